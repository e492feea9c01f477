// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError sends the uniform error body used by every endpoint.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
