package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"
)

type runner interface {
	RunSearch(ctx context.Context, clientID, override string) (int, error)
}

type SearchHandler struct {
	runner runner
}

func NewSearchHandler(runner runner) *SearchHandler {
	return &SearchHandler{runner: runner}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/:id/search", h.HandleRunSearch)
}

// HandleRunSearch triggers one pipeline run for the client, synchronously.
// The optional body query overrides the profile-derived one.
func (h *SearchHandler) HandleRunSearch(c fiber.Ctx) error {
	id := c.Params("id")

	var req dto.SearchRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
		}
	}

	count, err := h.runner.RunSearch(c.Context(), id, strings.TrimSpace(req.Query))
	if err != nil {
		return mapRunError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SearchResponse{
		ClientID:    id,
		ResultCount: count,
	})
}

func mapRunError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "client not found", nil, err)
	case errors.Is(err, usecase.ErrProviderFailure):
		return middleware.NewAppError(fiber.StatusBadGateway, "job search provider failed", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
