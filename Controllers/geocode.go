package Controllers

import (
	"Skycast/Geocode"

	"github.com/gofiber/fiber/v2"
)

// ReverseGeocode proxies reverse geocoding for the client so the browser never
// talks to Nominatim directly. Upstream failures degrade to empty fields.
func ReverseGeocode(ctx *fiber.Ctx) error {
	lat := ctx.Query("lat")
	lon := ctx.Query("lon")
	if lat == "" || lon == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lat/lon required"})
	}

	place, err := Geocode.Reverse(lat, lon)
	if err != nil {
		return ctx.JSON(fiber.Map{"country": "", "city": ""})
	}

	return ctx.JSON(place)
}
