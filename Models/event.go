package Models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a planned outdoor event. Country, city and the coordinates are
// optional until the user picks a place.
type Event struct {
	gorm.Model
	UserID    uint     `json:"-" gorm:"index;not null"`
	EventName string   `json:"event_name" gorm:"not null"`
	Date      string   `json:"date" gorm:"not null"`
	Country   *string  `json:"country"`
	City      *string  `json:"city"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
}

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
