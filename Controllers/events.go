package Controllers

import (
	"strconv"
	"strings"

	"Skycast/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventController handles event-related API endpoints
type EventController struct {
	DB *gorm.DB
}

// NewEventController creates a new EventController
func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

type eventInput struct {
	EventName string   `json:"event_name"`
	Date      string   `json:"date"`
	Country   string   `json:"country"`
	City      string   `json:"city"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
}

func currentUser(ctx *fiber.Ctx) Models.User {
	return ctx.Locals("user").(Models.User)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// GetEvents lists the calling user's events ordered by date, newest id first
// within a day.
func (c *EventController) GetEvents(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	events := []Models.Event{}
	result := c.DB.Where("user_id = ?", user.ID).Order("date ASC, id DESC").Find(&events)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve events"})
	}

	return ctx.JSON(events)
}

// CreateEvent creates a new event for the calling user
func (c *EventController) CreateEvent(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	var input eventInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	name := strings.TrimSpace(input.EventName)
	if name == "" || input.Date == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "event_name and date are required"})
	}
	if !Models.ValidDate(input.Date) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	event := Models.Event{
		UserID:    user.ID,
		EventName: name,
		Date:      input.Date,
		Country:   optional(input.Country),
		City:      optional(input.City),
		Lat:       input.Lat,
		Lon:       input.Lon,
	}

	if result := c.DB.Create(&event); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEvent partially updates an event; empty fields keep their stored values
func (c *EventController) UpdateEvent(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event ID"})
	}

	var event Models.Event
	result := c.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&event)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
	}

	var input eventInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if name := strings.TrimSpace(input.EventName); name != "" {
		event.EventName = name
	}
	if input.Date != "" {
		if !Models.ValidDate(input.Date) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
		}
		event.Date = input.Date
	}
	if country := optional(input.Country); country != nil {
		event.Country = country
	}
	if city := optional(input.City); city != nil {
		event.City = city
	}
	if input.Lat != nil {
		event.Lat = input.Lat
	}
	if input.Lon != nil {
		event.Lon = input.Lon
	}

	if result := c.DB.Save(&event); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event"})
	}

	return ctx.JSON(event)
}

// DeleteEvent removes an event owned by the calling user
func (c *EventController) DeleteEvent(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event ID"})
	}

	result := c.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&Models.Event{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete event"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
	}

	return ctx.JSON(fiber.Map{"ok": true})
}
