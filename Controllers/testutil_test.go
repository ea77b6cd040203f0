package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"Skycast/FiberConfig"
	"Skycast/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory database and points the package-level
// connection at it so the auth middleware sees the same data.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := Models.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	Models.DB = db
	return db
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)
	return app, db
}

func jsonRequest(method, target string, body interface{}, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", data, err)
	}
}

type appWithToken struct {
	app   *fiber.App
	token string
}

// newAppWithToken builds an app with a fresh database and one signed-up user.
func newAppWithToken(t *testing.T, username string) *appWithToken {
	t.Helper()

	app, _ := setupApp(t)
	return &appWithToken{app: app, token: signupUser(t, app, username)}
}

func itoa(id uint) string {
	return fmt.Sprintf("%d", id)
}

// signupUser registers a user through the API and returns its token.
func signupUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	req := jsonRequest(http.MethodPost, "/signup", map[string]string{
		"username": username,
		"pin":      "1234",
	}, "")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Signup request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Signup returned status %d", resp.StatusCode)
	}

	var body struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	if !body.OK || body.Token == "" {
		t.Fatalf("Signup returned unexpected body: %+v", body)
	}
	return body.Token
}
