package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"reservabook-backend/models"
	"reservabook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || os.Getenv("TWILIO_AUTH_TOKEN") == "" {
		log.Println("Twilio not configured, reminder scheduler disabled")
		return
	}

	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendUpcomingReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendUpcomingReminders messages every customer booked for tomorrow.
func (s *ReminderService) SendUpcomingReminders() {
	log.Println("Starting booking reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1).Format(utils.DateLayout)

	var bookings []BookingDetail
	if err := s.db.Table("bookings").
		Select(bookingDetailColumns).
		Joins("JOIN services ON services.code = bookings.service_code").
		Where("bookings.booking_date = ?", tomorrow).
		Scan(&bookings).Error; err != nil {
		log.Printf("Failed to fetch bookings for %s: %v", tomorrow, err)
		return
	}

	for _, booking := range bookings {
		s.sendReminder(booking)
	}
}

func (s *ReminderService) sendReminder(booking BookingDetail) {
	message := fmt.Sprintf("Hi %s, this is a reminder for your %s appointment tomorrow at %s.",
		booking.FirstName, booking.ServiceName, booking.BookingTime)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(booking.Phone, "+") {
		to = "whatsapp:" + booking.Phone
		channel = "whatsapp"
	} else {
		to = booking.Phone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", booking.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", booking.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", booking.Phone)
	}

	reminderLog := models.ReminderLog{
		BookingID:    booking.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for booking %d: %v", booking.ID, err)
	}
}
