package Controllers

import (
	"strings"

	"Skycast/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LocationController handles the PostGIS-backed locations table
type LocationController struct {
	DB *gorm.DB
}

// NewLocationController creates a new LocationController
func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

type locationInput struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon  *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

// GetLocations lists all saved locations with their coordinates
func (c *LocationController) GetLocations(ctx *fiber.Ctx) error {
	locations, err := Models.ListLocations(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve locations"})
	}

	return ctx.JSON(locations)
}

// CreateLocation saves a named WGS84 point
func (c *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	var input locationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "valid lat and lon are required"})
	}

	var name *string
	if trimmed := strings.TrimSpace(input.Name); trimmed != "" {
		name = &trimmed
	}

	location, err := Models.CreateLocation(c.DB, name, *input.Lat, *input.Lon)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create location"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(location)
}
