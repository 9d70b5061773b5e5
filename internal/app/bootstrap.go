package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/config"
	"jobscout/internal/delivery/http/handler"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/delivery/http/routes"
	"jobscout/internal/pkg/logging"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := logging.New(cfg.App.LogLevel)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{})
	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.Cache),
		handler.NewClientsHandler(c.Clients, c.Tracker, c.Roster),
		handler.NewSearchHandler(c.Pipeline),
		handler.NewExportHandler(c.Export),
	)
	registry.Register(f)

	cleanup := func() error {
		_ = logger.Sync()
		return c.Close()
	}

	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *logging.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
