package config

import (
	"log"
	"os"
	"time"

	"reservabook-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

const (
	maxConnectAttempts = 3
	connectRetryDelay  = 2 * time.Second
)

// ConnectDB opens the postgres connection from DB_URL, retrying transient
// failures a bounded number of times before giving up.
func ConnectDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_URL")

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if attempt < maxConnectAttempts {
			log.Printf("Connection attempt %d failed: %v", attempt, err)
			log.Printf("Retrying in %s...", connectRetryDelay)
			time.Sleep(connectRetryDelay)
		}
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	DB = db
	return db, nil
}

// SeedServices inserts the fixed service catalog once, when the table is empty.
func SeedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []models.Service{
		{Code: "consultation", Name: "Consultation", DurationMin: 30, PriceCents: 5000},
		{Code: "repair", Name: "Repair Service", DurationMin: 60, PriceCents: 8500},
		{Code: "installation", Name: "Installation", DurationMin: 120, PriceCents: 12000},
		{Code: "maintenance", Name: "Maintenance", DurationMin: 45, PriceCents: 6500},
	}
	if err := db.Create(&seed).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d services", len(seed))
	return nil
}
