package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/pkg/response"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func healthApp(pinger cachePinger) *fiber.App {
	app := fiber.New()
	NewHealthHandler(pinger).RegisterRoutes(app)
	return app
}

func getHealth(t *testing.T, app *fiber.App) response.SemanticResponse {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}

	var body response.SemanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func cacheStatus(t *testing.T, body response.SemanticResponse) string {
	t.Helper()

	data, ok := body.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %v", body.Data)
	}
	status, _ := data["cache"].(string)
	return status
}

func TestHealthHandler_CacheReachable(t *testing.T) {
	body := getHealth(t, healthApp(fakePinger{}))
	if got := cacheStatus(t, body); got != "ok" {
		t.Fatalf("expected cache ok, got %q", got)
	}
}

func TestHealthHandler_CacheUnavailable(t *testing.T) {
	body := getHealth(t, healthApp(fakePinger{err: errors.New("redis unavailable")}))
	if got := cacheStatus(t, body); got != "unavailable" {
		t.Fatalf("expected cache unavailable, got %q", got)
	}
}
