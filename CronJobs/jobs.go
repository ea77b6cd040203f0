package CronJobs

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"Skycast/Geocode"
	"Skycast/Models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// GeoBackfill fills in country/city on events that have coordinates but no
// place names yet.
type GeoBackfill struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	rateLimitDelay time.Duration
	runImmediately bool
	jobID          cron.EntryID
}

// NewGeoBackfill creates a backfill job with the given configuration
func NewGeoBackfill(db *gorm.DB, runImmediately bool) *GeoBackfill {
	return &GeoBackfill{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		rateLimitDelay: time.Second, // Nominatim asks for max 1 req/s
		runImmediately: runImmediately,
	}
}

// Start schedules the backfill to run daily at 3:00 AM
func (g *GeoBackfill) Start() error {
	var err error
	g.jobID, err = g.cronScheduler.AddFunc("0 0 3 * * *", func() {
		log.Println("Running scheduled geocode backfill")
		g.runBackfill()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	g.cronScheduler.Start()

	if g.runImmediately {
		log.Println("Running initial geocode backfill")
		g.runBackfill()
	}

	return nil
}

// Stop terminates the scheduler
func (g *GeoBackfill) Stop() {
	if g.cronScheduler != nil {
		g.cronScheduler.Stop()
		log.Println("Geocode backfill scheduler stopped")
	}
}

func (g *GeoBackfill) runBackfill() {
	var events []Models.Event
	err := g.db.
		Where("lat IS NOT NULL AND lon IS NOT NULL").
		Where("country IS NULL OR country = '' OR city IS NULL OR city = ''").
		Find(&events).Error
	if err != nil {
		log.Printf("Geocode backfill query failed: %v", err)
		return
	}

	successCount := 0
	errorCount := 0
	for _, event := range events {
		lat := strconv.FormatFloat(*event.Lat, 'f', -1, 64)
		lon := strconv.FormatFloat(*event.Lon, 'f', -1, 64)

		place, err := Geocode.Reverse(lat, lon)
		if err != nil {
			log.Printf("Geocode backfill lookup failed for event %d: %v", event.ID, err)
			errorCount++
			continue
		}
		if place.Country == "" && place.City == "" {
			errorCount++
			continue
		}

		if place.Country != "" {
			event.Country = &place.Country
		}
		if place.City != "" {
			event.City = &place.City
		}
		if err := g.db.Save(&event).Error; err != nil {
			log.Printf("Geocode backfill save failed for event %d: %v", event.ID, err)
			errorCount++
			continue
		}
		successCount++

		if g.rateLimitDelay > 0 {
			time.Sleep(g.rateLimitDelay)
		}
	}

	if len(events) > 0 {
		log.Printf("Geocode backfill completed. Success: %d, Errors: %d", successCount, errorCount)
	}
}
