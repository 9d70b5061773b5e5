package app

import (
	"path/filepath"

	"jobscout/internal/config"
	"jobscout/internal/infrastructure/cache"
	"jobscout/internal/infrastructure/directory"
	"jobscout/internal/infrastructure/provider"
	"jobscout/internal/pkg/logging"
	"jobscout/internal/repository"
	"jobscout/internal/scheduler"
	"jobscout/internal/usecase"
)

// Container wires every long-lived component once at startup.
type Container struct {
	Config    config.Config
	Logger    *logging.Logger
	Cache     *cache.Redis
	Clients   *repository.ClientRepository
	Store     *repository.FileJobStore
	Tracker   *repository.MemoryRunTracker
	Pipeline  *usecase.Pipeline
	Export    *usecase.Export
	Roster    *usecase.Roster
	Scheduler *scheduler.Scheduler
}

func NewContainer(cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	var source repository.DirectorySource
	if airtable := directory.NewAirtableClient(cfg.Airtable, "", logger); airtable != nil {
		source = airtable
	} else {
		logger.Warn("client directory not configured, starting with empty roster")
	}
	clients := repository.NewClientRepository(source, logger)

	store, err := repository.NewFileJobStore(filepath.Join(cfg.App.DataDir, "stores"))
	if err != nil {
		return nil, err
	}

	tracker := repository.NewMemoryRunTracker(redisCache, logger)

	searchProvider := provider.NewSerpAPIClient(cfg.SerpAPI, logger)
	pipeline := usecase.NewPipeline(clients, searchProvider, store, tracker, cfg.App.SearchRegion, logger)

	sched := scheduler.New(pipeline, logger)
	roster := usecase.NewRoster(clients, sched, logger)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Cache:     redisCache,
		Clients:   clients,
		Store:     store,
		Tracker:   tracker,
		Pipeline:  pipeline,
		Export:    usecase.NewExport(clients, store),
		Roster:    roster,
		Scheduler: sched,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return c.Cache.Close()
}
