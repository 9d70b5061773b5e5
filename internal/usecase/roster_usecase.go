package usecase

import (
	"context"

	"jobscout/internal/domain/client"
	"jobscout/internal/pkg/logging"
)

type rosterRepo interface {
	Refresh(ctx context.Context) ([]client.Profile, error)
	List() []client.Profile
}

// registrar retires old schedule registrations and creates new ones.
type registrar interface {
	Reload(clients []client.Profile)
}

// Roster ties a directory refresh to the scheduler: a successful refresh
// always reloads registrations so removed or rescheduled clients never keep
// a stale trigger.
type Roster struct {
	repo      rosterRepo
	registrar registrar
	logger    *logging.Logger
}

func NewRoster(repo rosterRepo, registrar registrar, logger *logging.Logger) *Roster {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Roster{repo: repo, registrar: registrar, logger: logger}
}

// RefreshRoster pulls the roster and reloads scheduler registrations. On
// directory failure the previous roster and registrations stay untouched.
func (r *Roster) RefreshRoster(ctx context.Context) (int, error) {
	if _, err := r.repo.Refresh(ctx); err != nil {
		return 0, err
	}

	clients := r.repo.List()
	r.registrar.Reload(clients)
	return len(clients), nil
}
