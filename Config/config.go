package Config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Connection and signing settings, loaded once at startup. Defaults match the
// docker-compose environment so a bare container still comes up.
var (
	DBHost     = "db"
	DBPort     = "5432"
	DBName     = "nasa2025"
	DBUser     = "nasa2025"
	DBPassword = "nasa2025"

	AppSecret = "change-me-please"

	Port = "8000"
)

// Load reads an optional .env file and then the process environment.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment")
	}

	DBHost = getEnv("POSTGRES_HOST", DBHost)
	DBPort = getEnv("POSTGRES_PORT", DBPort)
	DBName = getEnv("POSTGRES_DB", DBName)
	DBUser = getEnv("POSTGRES_USER", DBUser)
	DBPassword = getEnv("POSTGRES_PASSWORD", DBPassword)
	AppSecret = getEnv("APP_SECRET", AppSecret)
	Port = getEnv("PORT", Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
