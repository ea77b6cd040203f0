package Controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}
