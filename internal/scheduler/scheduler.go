package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"jobscout/internal/domain/client"
	"jobscout/internal/pkg/logging"
)

// Runner is the pipeline entry point shared by scheduled firings and manual
// triggers, so both produce identical observable effects.
type Runner interface {
	RunSearch(ctx context.Context, clientID, override string) (int, error)
}

// Scheduler owns one daily cron registration per scheduled client. Each
// firing runs in its own goroutine; same-client runs are serialized by the
// pipeline itself.
type Scheduler struct {
	cron   *cron.Cron
	runner Runner
	logger *logging.Logger

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

func New(runner Runner, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scheduler{
		cron:    cron.New(),
		runner:  runner,
		logger:  logger,
		entries: make(map[string]cron.EntryID),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the trigger loop and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Reload retires every existing registration, then registers each client
// that carries a parseable "hh:mm" schedule spec. A malformed spec logs a
// warning and leaves only that client unscheduled.
func (s *Scheduler) Reload(clients []client.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		s.cron.Remove(entry)
		delete(s.entries, id)
	}

	for _, p := range clients {
		if strings.TrimSpace(p.SearchTime) == "" {
			continue
		}

		sched, err := client.ParseSchedule(p.SearchTime)
		if err != nil {
			s.logger.Warn("client left unscheduled", "client_id", p.ID, "spec", p.SearchTime, "err", err)
			continue
		}

		clientID := p.ID
		spec := fmt.Sprintf("%d %d * * *", sched.Minute, sched.Hour)
		entryID, err := s.cron.AddFunc(spec, func() {
			s.fire(clientID)
		})
		if err != nil {
			s.logger.Warn("cron registration failed", "client_id", clientID, "spec", spec, "err", err)
			continue
		}
		s.entries[clientID] = entryID
	}

	s.logger.Info("scheduler reloaded", "registrations", len(s.entries))
}

// Registered returns the client ids with an active registration.
func (s *Scheduler) Registered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.entries))
	for id := range s.entries {
		out = append(out, id)
	}
	return out
}

func (s *Scheduler) fire(clientID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := s.runner.RunSearch(ctx, clientID, "")
	if err != nil {
		s.logger.Error("scheduled run failed", "client_id", clientID, "err", err)
		return
	}
	s.logger.Info("scheduled run completed", "client_id", clientID, "count", count)
}
