package services

import (
	"time"

	"reservabook-backend/models"
	"reservabook-backend/utils"

	"gorm.io/gorm"
)

// Business hours: slots run 9 AM through 5 PM inclusive, every 30 minutes.
const (
	slotOpenHour    = 9
	slotCloseHour   = 17
	slotInterval    = 30 * time.Minute
	slotLabelLayout = "3:04 PM"
)

// Slot describes one bookable interval on a given date.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
}

// SlotService derives the availability view for a date from business hours,
// the wall clock and existing bookings.
type SlotService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSlotService(db *gorm.DB) *SlotService {
	return &SlotService{db: db, now: time.Now}
}

// FormatSlotLabel renders the canonical slot label: 12-hour clock, no
// leading zero, AM/PM suffix ("9:00 AM", "2:30 PM"). Stored booking_time
// values use this exact string and comparisons are byte-for-byte, so every
// label must come from here.
func FormatSlotLabel(t time.Time) string {
	return t.Format(slotLabelLayout)
}

// SlotsForDate returns the ordered slots for a YYYY-MM-DD date. A slot is
// booked when a booking holds its label on that date, and unavailable when
// booked or already in the past — the past check only applies when the query
// date is today.
func (s *SlotService) SlotsForDate(dateStr string) ([]Slot, error) {
	day, err := time.ParseInLocation(utils.DateLayout, dateStr, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var bookedTimes []string
	if err := s.db.Model(&models.Booking{}).
		Where("booking_date = ?", day.Format(utils.DateLayout)).
		Pluck("booking_time", &bookedTimes).Error; err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(bookedTimes))
	for _, label := range bookedTimes {
		booked[label] = true
	}

	now := s.now()
	isToday := utils.SameDay(day, now)

	start := time.Date(day.Year(), day.Month(), day.Day(), slotOpenHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), slotCloseHour, 0, 0, 0, day.Location())

	slots := make([]Slot, 0, 17)
	for t := start; !t.After(end); t = t.Add(slotInterval) {
		label := FormatSlotLabel(t)
		isBooked := booked[label]
		isPast := isToday && t.Before(now)
		slots = append(slots, Slot{
			Time:      label,
			Available: !isPast && !isBooked,
			Booked:    isBooked,
		})
	}
	return slots, nil
}
