package repository

import (
	"context"
	"sync"
	"time"

	"jobscout/internal/domain/job"
	"jobscout/internal/pkg/logging"
)

// RunTracker records the latest completed run per client. No history.
type RunTracker interface {
	Record(ctx context.Context, clientID string, resultCount int)

	// Status returns the latest run snapshot, or a "never run" record when
	// the client has no recorded run.
	Status(ctx context.Context, clientID string) job.RunStatus
}

// statusCache is the subset of the Redis cache used for run metadata.
type statusCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// MemoryRunTracker keeps run statuses in memory, authoritative for the
// process lifetime, and writes through to Redis (when configured) so
// last-run metadata survives restarts. Cache failures are logged and never
// fail a run.
type MemoryRunTracker struct {
	cache  statusCache
	logger *logging.Logger
	now    func() time.Time

	mu       sync.RWMutex
	statuses map[string]job.RunStatus
}

func NewMemoryRunTracker(cache statusCache, logger *logging.Logger) *MemoryRunTracker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MemoryRunTracker{
		cache:    cache,
		logger:   logger,
		now:      time.Now,
		statuses: make(map[string]job.RunStatus),
	}
}

func (t *MemoryRunTracker) Record(ctx context.Context, clientID string, resultCount int) {
	ts := t.now().UTC()
	st := job.RunStatus{
		ClientID:    clientID,
		LastRunAt:   &ts,
		ResultCount: resultCount,
	}

	t.mu.Lock()
	t.statuses[clientID] = st
	t.mu.Unlock()

	if t.cache != nil {
		if err := t.cache.SetJSON(ctx, runStatusKey(clientID), st, 0); err != nil {
			t.logger.Warn("run status cache write failed", "client_id", clientID, "err", err)
		}
	}
}

func (t *MemoryRunTracker) Status(ctx context.Context, clientID string) job.RunStatus {
	t.mu.RLock()
	st, ok := t.statuses[clientID]
	t.mu.RUnlock()
	if ok {
		return st
	}

	if t.cache != nil {
		var cached job.RunStatus
		hit, err := t.cache.GetJSON(ctx, runStatusKey(clientID), &cached)
		if err == nil && hit && cached.ClientID == clientID {
			t.mu.Lock()
			t.statuses[clientID] = cached
			t.mu.Unlock()
			return cached
		}
	}

	return job.RunStatus{ClientID: clientID}
}

func runStatusKey(clientID string) string {
	return "runs:status:" + clientID
}
