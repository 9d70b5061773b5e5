package repository

import (
	"context"
	"errors"
	"testing"

	"jobscout/internal/domain/client"
)

type fakeDirectory struct {
	profiles []client.Profile
	err      error
}

func (f fakeDirectory) FetchClients(context.Context) ([]client.Profile, error) {
	return f.profiles, f.err
}

func TestClientRepository_RefreshReplacesRoster(t *testing.T) {
	repo := NewClientRepository(fakeDirectory{profiles: []client.Profile{
		{ID: "rec1", Name: "Jane Doe"},
		{ID: "rec2", Name: "John Smith"},
	}}, nil)

	if _, err := repo.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	list := repo.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(list))
	}
	if list[0].ID != "rec1" || list[1].ID != "rec2" {
		t.Fatalf("directory order not preserved: %v", list)
	}

	p, ok := repo.Get("rec2")
	if !ok || p.Name != "John Smith" {
		t.Fatalf("unexpected client: %+v ok=%v", p, ok)
	}
}

func TestClientRepository_FailedRefreshKeepsLastRoster(t *testing.T) {
	repo := NewClientRepository(fakeDirectory{profiles: []client.Profile{{ID: "rec1", Name: "Jane Doe"}}}, nil)
	if _, err := repo.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	repo.source = fakeDirectory{err: errors.New("directory down")}
	if _, err := repo.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}

	if len(repo.List()) != 1 {
		t.Fatalf("failed refresh must keep last-known roster")
	}
}

func TestClientRepository_SkipsRecordsWithoutID(t *testing.T) {
	repo := NewClientRepository(fakeDirectory{profiles: []client.Profile{
		{ID: "", Name: "No ID"},
		{ID: "rec1", Name: "Jane Doe"},
		{ID: "rec1", Name: "Duplicate"},
	}}, nil)

	if _, err := repo.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(repo.List()) != 1 {
		t.Fatalf("expected 1 client, got %d", len(repo.List()))
	}
}
