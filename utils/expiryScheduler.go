package utils

import (
	"log"
	"time"

	"medishare/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[EXPIRY-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredMedicines removes listings whose expiry date is in the past.
// The cutoff is today's day boundary so a medicine expiring today is still
// listed for the rest of the day.
func purgeExpiredMedicines(db *gorm.DB) {
	cutoff := now.BeginningOfDay()

	result := db.Where("exp_date < ?", cutoff).Delete(&models.Medicine{})
	if result.Error != nil {
		logScheduler("Error purging expired medicines: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler("Purged expired medicine listings")
	}
}

// StartExpiryScheduler runs the purge once a day. The returned cron can be
// stopped by the caller on shutdown.
func StartExpiryScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@daily", func() { purgeExpiredMedicines(db) }); err != nil {
		log.Fatalf("Failed to schedule expiry purge: %v", err)
	}

	c.Start()
	logScheduler("Expiry scheduler started")
	return c
}
