// controllers/health.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports service status and the available endpoints
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Reservabook API is running",
		"status":  "healthy",
		"endpoints": gin.H{
			"services":       "GET /api/services",
			"service":        "GET /api/services/<code>",
			"bookings":       "GET /api/bookings",
			"booking":        "GET /api/bookings/<id>",
			"create_booking": "POST /api/bookings",
			"update_booking": "PUT /api/bookings/<id>",
			"delete_booking": "DELETE /api/bookings/<id>",
			"slots":          "GET /api/slots?date=YYYY-MM-DD",
		},
	})
}
