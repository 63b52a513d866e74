package handlers

import (
	"log"
	"net/http"

	"food-delivery-platform/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP response. Domain errors carry
// their message; anything unexpected is logged and answered with a generic
// 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
