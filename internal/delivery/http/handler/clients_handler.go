package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/domain/client"
	"jobscout/internal/domain/job"
	"jobscout/internal/pkg/response"
)

type rosterReader interface {
	List() []client.Profile
	Get(id string) (client.Profile, bool)
}

type statusReader interface {
	Status(ctx context.Context, clientID string) job.RunStatus
}

type rosterRefresher interface {
	RefreshRoster(ctx context.Context) (int, error)
}

type ClientsHandler struct {
	roster    rosterReader
	tracker   statusReader
	refresher rosterRefresher
}

func NewClientsHandler(roster rosterReader, tracker statusReader, refresher rosterRefresher) *ClientsHandler {
	return &ClientsHandler{roster: roster, tracker: tracker, refresher: refresher}
}

func (h *ClientsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.HandleListClients)
	r.Post("/refresh", h.HandleRefresh)
	r.Get("/:id", h.HandleGetClient)
}

func (h *ClientsHandler) HandleListClients(c fiber.Ctx) error {
	profiles := h.roster.List()

	out := make([]dto.ClientResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toClientResponse(p, h.tracker.Status(c.Context(), p.ID)))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ClientsHandler) HandleGetClient(c fiber.Ctx) error {
	id := c.Params("id")

	p, ok := h.roster.Get(id)
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "client not found", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toClientResponse(p, h.tracker.Status(c.Context(), p.ID)))
}

func (h *ClientsHandler) HandleRefresh(c fiber.Ctx) error {
	count, err := h.refresher.RefreshRoster(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadGateway, "client directory unavailable", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RefreshResponse{Clients: count})
}

func toClientResponse(p client.Profile, st job.RunStatus) dto.ClientResponse {
	return dto.ClientResponse{
		ID:         p.ID,
		Name:       p.Name,
		Profession: p.Profession,
		Location:   p.Location,
		Email:      p.Email,
		SearchTime: p.SearchTime,
		Keywords:   p.Keywords,
		RunStatus: dto.RunStatusResponse{
			LastRunAt:   st.LastRunAt,
			ResultCount: st.ResultCount,
		},
	}
}
