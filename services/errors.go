package services

import (
	"errors"
	"strings"
)

// Domain errors produced by the service layer. Controllers translate these
// 1:1 to HTTP status codes; the message text is what clients see.
var (
	ErrBookingNotFound = errors.New("Booking not found")
	ErrServiceNotFound = errors.New("Service not found")
	ErrUnknownService  = errors.New("Unknown service")
	ErrInvalidDate     = errors.New("Invalid date format. Use YYYY-MM-DD")
	ErrSlotTaken       = errors.New("Time slot already booked")
	ErrNoFields        = errors.New("No fields to update")
)

// ValidationError reports required booking fields that were absent or empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Missing fields: " + strings.Join(e.Missing, ", ")
}
