package routes

import (
	"reservabook-backend/config"
	"reservabook-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", controllers.Health)

	serviceController := controllers.NewServiceController(db)
	bookingController := controllers.NewBookingController(db)
	slotController := controllers.NewSlotController(db)

	api := r.Group("/api")
	{
		// Service catalog routes
		catalog := api.Group("/services")
		{
			catalog.GET("", serviceController.GetServices)
			catalog.GET("/:code", serviceController.GetService)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingController.CreateBooking)
			bookings.GET("", bookingController.GetBookings)
			bookings.GET("/:id", bookingController.GetBooking)
			bookings.PUT("/:id", bookingController.UpdateBooking)
			bookings.DELETE("/:id", bookingController.DeleteBooking)
		}

		// Slot availability routes
		api.GET("/slots", slotController.GetSlots)
	}

	return r
}
