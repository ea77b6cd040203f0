package FiberConfig

import (
	"fmt"

	"Skycast/Config"
	"Skycast/Controllers"
	"Skycast/Models"
	"Skycast/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	eventController := Controllers.NewEventController(db)
	locationController := Controllers.NewLocationController(db)

	app.Get("/health", Controllers.Health)
	app.Post("/signup", Controllers.Signup)
	app.Post("/login", Controllers.Login)
	app.Get("/reverse_geocode", Controllers.ReverseGeocode)

	// Event routes
	events := app.Group("/events", middleware.Verify())
	events.Get("/", eventController.GetEvents)
	events.Post("/", eventController.CreateEvent)
	events.Put("/:id", eventController.UpdateEvent)
	events.Delete("/:id", eventController.DeleteEvent)

	app.Post("/suggest", middleware.Verify(), eventController.Suggest)

	// Location routes (PostGIS-backed)
	app.Get("/locations", locationController.GetLocations)
	app.Post("/locations", middleware.Verify(), locationController.CreateLocation)
}

// NewApp assembles the middleware stack and routes around the given database.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	// Auth rides in the Authorization header rather than cookies, so the
	// wildcard origin needs no credentials mode.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		MaxAge:       300,
	}))

	SetupRoutes(app, db)
	app.Static("/", "./static", fiber.Static{Compress: true})

	return app
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := NewApp(Models.DB)
	app.Listen(":" + Config.Port)
}
