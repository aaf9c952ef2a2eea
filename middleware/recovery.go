package middleware

import (
	"log"
	"net/http"

	"cuci-sepatu/models"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware converts panics into the generic 500 envelope.
// The panic detail is logged, never sent to the client.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "Terjadi kesalahan pada server",
		})
	})
}
