package middleware

import (
	"net/http"
	"strings"
	"time"

	"food-delivery-platform/config"
	"food-delivery-platform/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTTL = 24 * time.Hour

	ctxUserID = "userID"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// Claims carries the identity the role gates act on: who is calling and which
// of the three platform roles they hold.
type Claims struct {
	UserID uint            `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a 24h HS256 token for the user.
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
}

// AuthRequired validates the bearer token and puts the caller's identity on
// the context. Tokens carrying a role outside the platform's closed set are
// rejected outright.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(
			strings.TrimPrefix(header, "Bearer "),
			claims,
			func(t *jwt.Token) (interface{}, error) { return config.JWTSecret, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		if !models.ValidRoles[claims.Role] {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token carries an unknown role"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, string(claims.Role))
		c.Next()
	}
}

// RoleRequired gates a route group to the listed roles. It runs after
// AuthRequired, so a missing role means a wiring mistake, not a bad token.
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ctxRole)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		caller := models.UserRole(val.(string))
		for _, role := range roles {
			if caller == role {
				c.Next()
				return
			}
		}
		names := make([]string, len(roles))
		for i, role := range roles {
			names[i] = string(role)
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + strings.Join(names, ", "),
		})
		c.Abort()
	}
}

// GetUserID returns the authenticated caller's user ID.
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get(ctxUserID)
	return val.(uint)
}

// GetRole returns the authenticated caller's role.
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get(ctxRole)
	return models.UserRole(val.(string))
}
