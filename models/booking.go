package models

import (
	"time"
)

// Booking reserves one service at one (date, time) slot. BookingTime holds
// the formatted slot label ("10:00 AM"); the composite unique index makes
// double-booking a slot impossible even under concurrent writes.
type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ServiceCode string    `gorm:"type:varchar(64);index;not null" json:"service_code"`
	BookingDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_date_time,priority:1" json:"booking_date"`
	BookingTime string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_date_time,priority:2" json:"booking_time"`
	FirstName   string    `gorm:"type:varchar(128);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(128);not null" json:"last_name"`
	Email       string    `gorm:"type:varchar(255);index;not null" json:"email"`
	Phone       string    `gorm:"type:varchar(32);not null" json:"phone"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}
