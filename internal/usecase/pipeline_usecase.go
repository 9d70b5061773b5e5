package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"jobscout/internal/domain/client"
	"jobscout/internal/infrastructure/provider"
	"jobscout/internal/pkg/logging"
	"jobscout/internal/repository"
	"jobscout/internal/search"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrProviderFailure = errors.New("provider search failed")
)

// clientSource is the roster subset the usecases need.
type clientSource interface {
	Get(id string) (client.Profile, bool)
}

// Pipeline runs the discovery pipeline for one client: build query, search
// the provider, filter by keywords, merge into the client's store, record
// the run. Scheduled and manual triggers share this entry point.
type Pipeline struct {
	clients  clientSource
	provider provider.SearchProvider
	store    repository.JobStore
	tracker  repository.RunTracker
	region   string
	logger   *logging.Logger

	mu   sync.Mutex
	runs map[string]*sync.Mutex
}

func NewPipeline(
	clients clientSource,
	searchProvider provider.SearchProvider,
	store repository.JobStore,
	tracker repository.RunTracker,
	region string,
	logger *logging.Logger,
) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		clients:  clients,
		provider: searchProvider,
		store:    store,
		tracker:  tracker,
		region:   region,
		logger:   logger,
		runs:     make(map[string]*sync.Mutex),
	}
}

// RunSearch executes one complete run for the client. Runs for the same
// client are serialized; runs for different clients proceed concurrently.
// It returns the size of the client's store after the merge.
//
// A provider failure still records a run with count 0, and the error is
// returned so manual callers can report it. A persistence failure aborts
// before the tracker update so status never claims a merge that did not
// happen.
func (p *Pipeline) RunSearch(ctx context.Context, clientID, override string) (int, error) {
	profile, ok := p.clients.Get(clientID)
	if !ok {
		return 0, ErrClientNotFound
	}

	lock := p.runLock(clientID)
	lock.Lock()
	defer lock.Unlock()

	query := search.BuildQuery(profile, override)

	postings, err := p.provider.Search(ctx, query, p.region)
	if err != nil {
		p.logger.Error("provider search failed", "client_id", clientID, "query", query, "err", err)
		p.tracker.Record(ctx, clientID, 0)
		return 0, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	matched := search.FilterKeywords(postings, profile.Keywords)

	total, err := p.store.Merge(clientID, matched)
	if err != nil {
		p.logger.Error("store merge failed", "client_id", clientID, "err", err)
		return 0, fmt.Errorf("run for %s: %w", clientID, err)
	}

	p.tracker.Record(ctx, clientID, total)
	p.logger.Info("run completed",
		"client_id", clientID,
		"query", query,
		"fetched", len(postings),
		"matched", len(matched),
		"stored", total,
	)
	return total, nil
}

func (p *Pipeline) runLock(clientID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.runs[clientID]
	if !ok {
		lock = &sync.Mutex{}
		p.runs[clientID] = lock
	}
	return lock
}
