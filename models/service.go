package models

import (
	"fmt"
	"time"
)

type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	DurationMin int       `gorm:"not null" json:"duration_min"`
	PriceCents  int       `gorm:"not null" json:"-"`
	CreatedAt   time.Time `json:"-"`

	Bookings []Booking `gorm:"foreignKey:ServiceCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// PriceLabel formats the stored integer cents for display, dropping the
// trailing ".00" on whole-dollar amounts ("$50", "$85.50").
func (s *Service) PriceLabel() string {
	if s.PriceCents%100 == 0 {
		return fmt.Sprintf("$%d", s.PriceCents/100)
	}
	return fmt.Sprintf("$%.2f", float64(s.PriceCents)/100)
}
