package main

import (
	"Skycast/Config"
	"Skycast/CronJobs"
	"Skycast/FiberConfig"
	"Skycast/Models"
	"log"
)

func main() {
	Config.Load()
	Models.Connect()

	backfill := CronJobs.NewGeoBackfill(Models.DB, false)
	if err := backfill.Start(); err != nil {
		log.Printf("Failed to start geocode backfill: %v", err)
	}

	FiberConfig.FiberConfig()
}
