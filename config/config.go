package config

import (
	"log"
	"os"

	"food-delivery-platform/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v83"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Redis is nil when REDIS_ADDR is unset; rate limiting is skipped then.
var Redis *redis.Client

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_delivery_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env if present and falls back to the process environment.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found — using system environment variables")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "food_delivery_super_secret_2024"))
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️  STRIPE_SECRET_KEY not set — payment processing will fail")
	}
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "food_delivery.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate auto-migrates all models; shared with the test fixtures.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Driver{},
		&models.Delivery{},
		&models.Payment{},
		&models.Card{},
		&models.Notification{},
	)
}

// InitRedis connects the rate-limit store when configured.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️  REDIS_ADDR not set — login rate limiting disabled")
		return
	}
	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Println("✅ Redis connected for rate limiting")
}
