package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"urbanbean/internal/http/handlers"
	"urbanbean/internal/store"
)

func TestErrorHandlerFriendlyMessage(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())

	// Route that triggers an internal error
	app.Get("/err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout: secret trace")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, "Something went wrong") {
		t.Fatalf("friendly message missing; body=%s", s)
	}
	if strings.Contains(s, "db timeout") || strings.Contains(s, "secret") {
		t.Fatalf("internal details leaked to user; body=%s", s)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	app := newTestApp(t, store.NewMemoryStore())
	code, body := do(t, app, "GET", "/api/nope", "")
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", code, body)
	}
}

func TestPanicRecovered(t *testing.T) {
	app := newTestApp(t, store.NewMemoryStore())
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	code, body := do(t, app, "GET", "/boom", "")
	if code != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if strings.Contains(string(body), "boom") {
		t.Fatalf("panic value leaked; body=%s", body)
	}
}
