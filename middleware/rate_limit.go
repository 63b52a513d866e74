package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"food-delivery-platform/config"

	"github.com/gin-gonic/gin"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// LoginRateLimit throttles login attempts per email: after LoginMaxAttempts
// failures the email is locked out for LoginCooldown. Backed by Redis; a nil
// Redis client (unset REDIS_ADDR) disables the limiter entirely.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.Redis == nil {
			c.Next()
			return
		}

		// Read the body without consuming it for the handler.
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		attemptsKey := "login_attempts:" + input.Email
		cooldownKey := "login_cooldown:" + input.Email

		if config.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := config.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many login attempts, try again in %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := config.Redis.Get(ctx, attemptsKey).Int()
		if attempts >= LoginMaxAttempts {
			config.Redis.Set(ctx, cooldownKey, "1", LoginCooldown)
			config.Redis.Del(ctx, attemptsKey)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many login attempts, locked out for %d minutes", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RecordLoginFailure bumps the attempt counter after a bad password.
func RecordLoginFailure(email string) {
	if config.Redis == nil {
		return
	}
	ctx := context.Background()
	key := "login_attempts:" + email
	config.Redis.Incr(ctx, key)
	config.Redis.Expire(ctx, key, LoginCooldown)
}

// ClearLoginFailures resets the counter on a successful login.
func ClearLoginFailures(email string) {
	if config.Redis == nil {
		return
	}
	config.Redis.Del(context.Background(), "login_attempts:"+email)
}
