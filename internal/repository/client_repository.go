package repository

import (
	"context"
	"fmt"
	"sync"

	"jobscout/internal/domain/client"
	"jobscout/internal/pkg/logging"
)

// DirectorySource fetches the full client roster from the external directory.
// The fetch is all-or-nothing; there is no incremental diff contract.
type DirectorySource interface {
	FetchClients(ctx context.Context) ([]client.Profile, error)
}

// ClientRepository owns the process-wide roster. The roster is replaced
// wholesale on a successful refresh; a failed refresh keeps the last-known
// roster so a flaky directory never wipes scheduled clients.
type ClientRepository struct {
	source DirectorySource
	logger *logging.Logger

	mu      sync.RWMutex
	order   []string
	clients map[string]client.Profile
}

func NewClientRepository(source DirectorySource, logger *logging.Logger) *ClientRepository {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ClientRepository{
		source:  source,
		logger:  logger,
		clients: make(map[string]client.Profile),
	}
}

// Refresh pulls the full roster from the directory and swaps it in. On
// failure the previous roster stays in place and the error is returned.
func (r *ClientRepository) Refresh(ctx context.Context) ([]client.Profile, error) {
	if r.source == nil {
		return nil, fmt.Errorf("refresh roster: no directory source configured")
	}

	profiles, err := r.source.FetchClients(ctx)
	if err != nil {
		r.logger.Error("directory refresh failed, keeping last-known roster", "err", err)
		return nil, fmt.Errorf("refresh roster: %w", err)
	}

	order := make([]string, 0, len(profiles))
	clients := make(map[string]client.Profile, len(profiles))
	for _, p := range profiles {
		if p.ID == "" {
			continue
		}
		if _, dup := clients[p.ID]; dup {
			continue
		}
		order = append(order, p.ID)
		clients[p.ID] = p
	}

	r.mu.Lock()
	r.order = order
	r.clients = clients
	r.mu.Unlock()

	r.logger.Info("roster refreshed", "clients", len(clients))
	return profiles, nil
}

// List returns the roster in directory order.
func (r *ClientRepository) List() []client.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]client.Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.clients[id])
	}
	return out
}

func (r *ClientRepository) Get(id string) (client.Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.clients[id]
	return p, ok
}
