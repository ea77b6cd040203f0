package Models

import (
	"fmt"
	"log"

	"Skycast/Config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// PostGIS bootstrap. Both statements are idempotent so the script can run on
// every startup and in the database init container.
const bootstrapSQL = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS locations (
    id SERIAL PRIMARY KEY,
    name TEXT,
    geom GEOMETRY(Point, 4326) NOT NULL
);
`

func Connect() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		Config.DBHost, Config.DBUser, Config.DBPassword, Config.DBName, Config.DBPort)

	connection, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := DB.Exec(bootstrapSQL).Error; err != nil {
		log.Fatalf("Failed to bootstrap PostGIS: %v", err)
	}
}

// Migrate creates the application tables. Users first, events reference them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Event{})
}
