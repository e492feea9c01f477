package services

import (
	"errors"

	"reservabook-backend/models"
	"reservabook-backend/utils"

	"gorm.io/gorm"
)

// BookingService owns booking CRUD and the slot-conflict invariant: at most
// one booking per (booking_date, booking_time), system-wide. The conflict
// check runs inside the same transaction as the write, with the composite
// unique index as the backstop against concurrent writers.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// UpdateBookingInput defines the expected JSON structure for updating a booking
type UpdateBookingInput struct {
	Service   *string `json:"service"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

// BookingDetail is a booking joined with its service name for API responses.
type BookingDetail struct {
	models.Booking
	ServiceName string `json:"service_name"`
}

const bookingDetailColumns = "bookings.id, bookings.service_code, bookings.booking_date, bookings.booking_time, " +
	"bookings.first_name, bookings.last_name, bookings.email, bookings.phone, bookings.notes, bookings.created_at, " +
	"services.name AS service_name"

// Create validates in a fixed order (missing fields, date format, service
// existence, slot conflict) so error reporting stays deterministic, then
// inserts within one transaction.
func (s *BookingService) Create(input CreateBookingInput) (uint, error) {
	required := []struct {
		name  string
		value string
	}{
		{"service", input.Service},
		{"date", input.Date},
		{"time", input.Time},
		{"first_name", input.FirstName},
		{"last_name", input.LastName},
		{"email", input.Email},
		{"phone", input.Phone},
	}
	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return 0, &ValidationError{Missing: missing}
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return 0, ErrInvalidDate
	}

	booking := models.Booking{
		ServiceCode: input.Service,
		BookingDate: date,
		BookingTime: input.Time,
		FirstName:   utils.CleanText(input.FirstName),
		LastName:    utils.CleanText(input.LastName),
		Email:       utils.CleanText(input.Email),
		Phone:       utils.CleanText(input.Phone),
		Notes:       utils.CleanOptional(input.Notes),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Service{}).Where("code = ?", input.Service).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUnknownService
		}

		if err := tx.Model(&models.Booking{}).
			Where("booking_date = ? AND booking_time = ?", booking.BookingDate, booking.BookingTime).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if err := tx.Create(&booking).Error; err != nil {
			// Lost a race to a concurrent writer; the unique index caught it.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return booking.ID, nil
}

// Get retrieves a single booking joined with its service name.
func (s *BookingService) Get(id uint) (*BookingDetail, error) {
	var detail BookingDetail
	err := s.db.Table("bookings").
		Select(bookingDetailColumns).
		Joins("JOIN services ON services.code = bookings.service_code").
		Where("bookings.id = ?", id).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &detail, nil
}

// List retrieves bookings matching the optional email and date filters,
// newest slot first.
func (s *BookingService) List(email, date string) ([]BookingDetail, error) {
	query := s.db.Table("bookings").
		Select(bookingDetailColumns).
		Joins("JOIN services ON services.code = bookings.service_code")
	if email != "" {
		query = query.Where("bookings.email = ?", email)
	}
	if date != "" {
		query = query.Where("bookings.booking_date = ?", date)
	}

	details := make([]BookingDetail, 0)
	err := query.Order("bookings.booking_date DESC, bookings.booking_time DESC").Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

// Update applies only the fields present in the input as one atomic update.
// When the date or time changes, the conflict check is re-evaluated against
// the resulting (date, time) pair, filling the missing half from the stored
// record and excluding the record's own id.
func (s *BookingService) Update(id uint, input UpdateBookingInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		updates := map[string]any{}
		if input.Service != nil {
			var count int64
			if err := tx.Model(&models.Service{}).Where("code = ?", *input.Service).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrUnknownService
			}
			updates["service_code"] = *input.Service
		}
		if input.Date != nil {
			date, err := utils.ParseDate(*input.Date)
			if err != nil {
				return ErrInvalidDate
			}
			updates["booking_date"] = date
		}
		if input.Time != nil {
			updates["booking_time"] = *input.Time
		}
		if input.FirstName != nil {
			updates["first_name"] = utils.CleanText(*input.FirstName)
		}
		if input.LastName != nil {
			updates["last_name"] = utils.CleanText(*input.LastName)
		}
		if input.Email != nil {
			updates["email"] = utils.CleanText(*input.Email)
		}
		if input.Phone != nil {
			updates["phone"] = utils.CleanText(*input.Phone)
		}
		if input.Notes != nil {
			updates["notes"] = utils.CleanOptional(*input.Notes)
		}
		if len(updates) == 0 {
			return ErrNoFields
		}

		if input.Date != nil || input.Time != nil {
			checkDate := booking.BookingDate
			if v, ok := updates["booking_date"]; ok {
				checkDate = v.(string)
			}
			checkTime := booking.BookingTime
			if v, ok := updates["booking_time"]; ok {
				checkTime = v.(string)
			}

			var count int64
			if err := tx.Model(&models.Booking{}).
				Where("booking_date = ? AND booking_time = ? AND id <> ?", checkDate, checkTime, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrSlotTaken
			}
		}

		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

// Delete hard-deletes a booking.
func (s *BookingService) Delete(id uint) error {
	result := s.db.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
