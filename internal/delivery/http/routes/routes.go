package routes

import (
	"github.com/gofiber/fiber/v3"

	"jobscout/internal/delivery/http/handler"
)

type Registry struct {
	health  *handler.HealthHandler
	clients *handler.ClientsHandler
	search  *handler.SearchHandler
	export  *handler.ExportHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	clients *handler.ClientsHandler,
	search *handler.SearchHandler,
	export *handler.ExportHandler,
) *Registry {
	return &Registry{
		health:  health,
		clients: clients,
		search:  search,
		export:  export,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	clients := v1.Group("/clients")
	r.clients.RegisterRoutes(clients)
	r.search.RegisterRoutes(clients)
	r.export.RegisterRoutes(clients)
}
