package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/pkg/response"
)

type cachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache cachePinger
}

func NewHealthHandler(cache cachePinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	cacheStatus := "ok"
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		cacheStatus = "unavailable"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"cache": cacheStatus,
	})
}
