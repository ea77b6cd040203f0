package Controllers

import (
	"strings"

	"Skycast/Models"

	"github.com/gofiber/fiber/v2"
)

// Advice is a packing/activity suggestion for an event.
type Advice struct {
	Predicted string   `json:"predicted"`
	Activity  string   `json:"activity"`
	Advice    []string `json:"advice"`
	Note      string   `json:"note"`
}

type suggestInput struct {
	EventID   uint     `json:"event_id"`
	EventName string   `json:"event_name"`
	Date      string   `json:"date"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// AdviseForEvent classifies an event name into an activity and returns packing
// tips. Prototype logic until a weather provider is wired in.
func AdviseForEvent(eventName, date string) Advice {
	name := strings.ToLower(eventName)

	predicted := "mixed conditions"
	if date != "" {
		predicted = "might be hot"
	}

	activity := "general"
	var tips []string
	switch {
	case containsAny(name, "picnic", "bbq", "barbecue", "beach", "park"):
		activity = "picnic"
		tips = []string{"bring umbrella", "pack extra ice", "carry sunscreen", "portable fan"}
	case containsAny(name, "hike", "trail", "trek"):
		activity = "hike"
		tips = []string{"hydration pack", "insect repellent", "light rain jacket", "trail shoes"}
	case containsAny(name, "drone", "flying", "aerial"):
		activity = "drone"
		tips = []string{"check wind speeds", "spare batteries", "ND filters", "avoid no-fly zones"}
	case containsAny(name, "wedding", "ceremony", "outdoor event", "party"):
		activity = "ceremony"
		tips = []string{"rent canopy options", "cooling fans", "backup indoor space", "ice chests"}
	default:
		tips = []string{"umbrella just in case", "water bottle", "sunscreen"}
	}

	return Advice{
		Predicted: predicted,
		Activity:  activity,
		Advice:    tips,
		Note:      "Prototype suggestions. Weather provider integration coming next.",
	}
}

// Suggest returns advice for an inline event or a stored one referenced by
// event_id. Inline fields win over the stored values.
func (c *EventController) Suggest(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	var input suggestInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	eventName := strings.TrimSpace(input.EventName)
	date := input.Date

	if input.EventID != 0 {
		var event Models.Event
		result := c.DB.Where("id = ? AND user_id = ?", input.EventID, user.ID).First(&event)
		if result.Error != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		if eventName == "" {
			eventName = event.EventName
		}
		if date == "" {
			date = event.Date
		}
	}

	return ctx.JSON(AdviseForEvent(eventName, date))
}
