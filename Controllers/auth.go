package Controllers

import (
	"strconv"
	"strings"
	"time"

	"Skycast/Config"
	"Skycast/Models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var validate = validator.New()

type credentials struct {
	Username string `json:"username"`
	Pin      string `json:"pin" validate:"required,len=4,number"`
}

// GenerateToken signs a JWT whose subject is the user id.
func GenerateToken(user Models.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(Config.AppSecret))
}

// Signup registers a username with a 4-digit PIN and returns a token.
func Signup(ctx *fiber.Ctx) error {
	var input credentials
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	input.Pin = strings.TrimSpace(input.Pin)
	if input.Username == "" || validate.Struct(input) != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and 4-digit PIN required",
		})
	}

	var existing Models.User
	if result := Models.DB.Where("username = ?", input.Username).First(&existing); result.Error == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "username taken"})
	}

	user := Models.User{Username: input.Username}
	if err := user.SetPin(input.Pin); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}
	if err := Models.DB.Create(&user).Error; err != nil {
		// A concurrent signup can slip past the lookup and land on the
		// unique index instead.
		message := strings.ToLower(err.Error())
		if strings.Contains(message, "unique") || strings.Contains(message, "duplicate") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "username taken"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	token, err := GenerateToken(user)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue token"})
	}

	return ctx.JSON(fiber.Map{"ok": true, "token": token})
}

// Login checks a username/PIN pair and returns a fresh token.
func Login(ctx *fiber.Ctx) error {
	var input credentials
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	input.Pin = strings.TrimSpace(input.Pin)
	if input.Username == "" || input.Pin == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and PIN required",
		})
	}

	var user Models.User
	result := Models.DB.Where("username = ?", input.Username).First(&user)
	if result.Error != nil || !user.CheckPin(input.Pin) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := GenerateToken(user)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue token"})
	}

	return ctx.JSON(fiber.Map{"ok": true, "token": token})
}
