// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"reservabook-backend/services"
	"reservabook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookingController maps HTTP requests onto the booking service; it does
// binding and response shaping only.
type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{bookings: services.NewBookingService(db)}
}

// CreateBooking creates a new booking
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	id, err := bc.bookings.Create(input)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking confirmed",
		"booking_id": id,
	})
}

// GetBookings retrieves bookings with optional email/date filters
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.bookings.List(c.Query("email"), c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a single booking by ID
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := bc.bookings.Get(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking applies a partial update to an existing booking
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var input services.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := bc.bookings.Update(id, input); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully"})
}

// DeleteBooking deletes a booking
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := bc.bookings.Delete(id); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// bookingID parses the :id route parameter; a non-numeric id can never match
// a booking, so it reports not found.
func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
		return 0, false
	}
	return uint(id), true
}

func respondBookingError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithError(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrUnknownService),
		errors.Is(err, services.ErrNoFields):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSlotTaken):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrBookingNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
