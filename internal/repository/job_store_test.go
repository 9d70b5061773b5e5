package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobscout/internal/domain/job"
)

func newTestStore(t *testing.T) *FileJobStore {
	t.Helper()
	store, err := NewFileJobStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileJobStore: %v", err)
	}
	return store
}

func TestFileJobStore_ListMissingClient(t *testing.T) {
	store := newTestStore(t)

	_, err := store.List("clientA")
	if !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestFileJobStore_MergeDeduplicatesByApplyLink(t *testing.T) {
	store := newTestStore(t)

	first := []job.Posting{
		{Title: "Job 1", ApplyLink: "L1"},
		{Title: "Job 2", ApplyLink: "L2"},
	}
	count, err := store.Merge("clientA", first)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}

	second := []job.Posting{
		{Title: "Job 2 again", ApplyLink: "L2"},
		{Title: "Job 3", ApplyLink: "L3"},
	}
	count, err = store.Merge("clientA", second)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3 after dedup merge, got %d", count)
	}

	stored, err := store.List("clientA")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	links := make([]string, 0, len(stored))
	for _, p := range stored {
		links = append(links, p.ApplyLink)
	}
	if strings.Join(links, ",") != "L1,L2,L3" {
		t.Fatalf("unexpected links: %v", links)
	}
	// First-seen wins: the L2 entry keeps its original title.
	if stored[1].Title != "Job 2" {
		t.Fatalf("expected first-seen posting for L2, got %q", stored[1].Title)
	}
}

func TestFileJobStore_MergeIdempotent(t *testing.T) {
	store := newTestStore(t)

	batch := []job.Posting{
		{Title: "Job 1", ApplyLink: "L1"},
		{Title: "Job 2", ApplyLink: "L2"},
	}
	if _, err := store.Merge("clientA", batch); err != nil {
		t.Fatalf("merge: %v", err)
	}
	count, err := store.Merge("clientA", batch)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if count != 2 {
		t.Fatalf("merging the same batch twice must not grow the store, got %d", count)
	}
}

func TestFileJobStore_DuplicatesWithinBatchCollapse(t *testing.T) {
	store := newTestStore(t)

	count, err := store.Merge("clientA", []job.Posting{
		{Title: "First", ApplyLink: "L1"},
		{Title: "Second", ApplyLink: "L1"},
	})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected in-batch dedup, got count %d", count)
	}

	stored, _ := store.List("clientA")
	if stored[0].Title != "First" {
		t.Fatalf("first occurrence should win, got %q", stored[0].Title)
	}
}

func TestFileJobStore_EmptyApplyLinksAlwaysRetained(t *testing.T) {
	store := newTestStore(t)

	count, err := store.Merge("clientA", []job.Posting{
		{Title: "No link 1"},
		{Title: "No link 2"},
	})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if count != 2 {
		t.Fatalf("postings without apply links must all be retained, got %d", count)
	}
}

func TestFileJobStore_ClientsAreIsolated(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Merge("clientA", []job.Posting{{Title: "A", ApplyLink: "L1"}}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	count, err := store.Merge("clientB", []job.Posting{{Title: "B", ApplyLink: "L1"}})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if count != 1 {
		t.Fatalf("dedup must not cross clients, got %d", count)
	}
}

func TestFileJobStore_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileJobStore(dir)
	if err != nil {
		t.Fatalf("NewFileJobStore: %v", err)
	}

	if _, err := store.Merge("clientA", []job.Posting{{Title: "A", ApplyLink: "L1"}}); err != nil {
		t.Fatalf("merge: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("temp files left behind: %v", matches)
	}
	if _, err := os.Stat(filepath.Join(dir, "clientA.json")); err != nil {
		t.Fatalf("expected store file: %v", err)
	}
}
