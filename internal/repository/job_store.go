package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"jobscout/internal/domain/job"
)

var ErrStoreNotFound = errors.New("job store not found")

// JobStore is the per-client append-only posting collection, keyed by
// application link.
type JobStore interface {
	// Merge appends postings whose apply link is not already stored, in input
	// order, collapsing duplicates within the batch (first occurrence wins).
	// It returns the size of the resulting collection, not the delta.
	Merge(clientID string, postings []job.Posting) (int, error)

	// List returns the client's stored postings, or ErrStoreNotFound when the
	// client has no store yet.
	List(clientID string) ([]job.Posting, error)
}

// FileJobStore persists one JSON file per client under dir. Writes are
// full-file rewrites through a temp file + rename so a failed write never
// corrupts the previous state. Each client has its own lock; unrelated
// clients never block each other.
type FileJobStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileJobStore(dir string) (*FileJobStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("job store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("job store: create dir %s: %w", dir, err)
	}
	return &FileJobStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileJobStore) Merge(clientID string, postings []job.Posting) (int, error) {
	if clientID == "" {
		return 0, fmt.Errorf("job store: empty client id")
	}

	lock := s.clientLock(clientID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.read(clientID)
	if err != nil && !errors.Is(err, ErrStoreNotFound) {
		return 0, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		// Empty apply links never match each other, so they are not tracked.
		if p.ApplyLink != "" {
			seen[p.ApplyLink] = struct{}{}
		}
	}

	merged := existing
	for _, p := range postings {
		if p.ApplyLink != "" {
			if _, dup := seen[p.ApplyLink]; dup {
				continue
			}
			seen[p.ApplyLink] = struct{}{}
		}
		merged = append(merged, p)
	}

	if err := s.write(clientID, merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}

func (s *FileJobStore) List(clientID string) ([]job.Posting, error) {
	if clientID == "" {
		return nil, fmt.Errorf("job store: empty client id")
	}

	lock := s.clientLock(clientID)
	lock.Lock()
	defer lock.Unlock()

	return s.read(clientID)
}

func (s *FileJobStore) clientLock(clientID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[clientID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[clientID] = lock
	}
	return lock
}

func (s *FileJobStore) path(clientID string) string {
	return filepath.Join(s.dir, sanitizeFilename(clientID)+".json")
}

func (s *FileJobStore) read(clientID string) ([]job.Posting, error) {
	b, err := os.ReadFile(s.path(clientID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("job store: read %s: %w", clientID, err)
	}

	var postings []job.Posting
	if err := json.Unmarshal(b, &postings); err != nil {
		return nil, fmt.Errorf("job store: decode %s: %w", clientID, err)
	}
	return postings, nil
}

func (s *FileJobStore) write(clientID string, postings []job.Posting) error {
	b, err := json.MarshalIndent(postings, "", "  ")
	if err != nil {
		return fmt.Errorf("job store: encode %s: %w", clientID, err)
	}

	tmp, err := os.CreateTemp(s.dir, sanitizeFilename(clientID)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("job store: temp file for %s: %w", clientID, err)
	}

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("job store: write %s: %w", clientID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("job store: close %s: %w", clientID, err)
	}

	if err := os.Rename(tmp.Name(), s.path(clientID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("job store: rename %s: %w", clientID, err)
	}
	return nil
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
