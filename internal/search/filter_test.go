package search

import (
	"testing"

	"jobscout/internal/domain/job"
)

func TestFilterKeywords_EmptyListPassesThrough(t *testing.T) {
	postings := []job.Posting{
		{Title: "Registered Nurse"},
		{Title: "Plumber"},
	}

	got := FilterKeywords(postings, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(got))
	}
}

func TestFilterKeywords_CaseInsensitive(t *testing.T) {
	postings := []job.Posting{{Title: "Registered NURSE"}}

	got := FilterKeywords(postings, []string{"nurse"})
	if len(got) != 1 {
		t.Fatalf("expected case-insensitive match, got %d postings", len(got))
	}
}

func TestFilterKeywords_MatchesDescription(t *testing.T) {
	postings := []job.Posting{
		{Title: "Healthcare Role", Description: "We need an experienced nurse."},
		{Title: "Warehouse Operator", Description: "Forklift licence required."},
	}

	got := FilterKeywords(postings, []string{"nurse"})
	if len(got) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(got))
	}
	if got[0].Title != "Healthcare Role" {
		t.Fatalf("unexpected posting: %q", got[0].Title)
	}
}

func TestFilterKeywords_PreservesOrder(t *testing.T) {
	postings := []job.Posting{
		{Title: "Nurse A"},
		{Title: "Cook"},
		{Title: "Nurse B"},
		{Title: "Nurse C"},
	}

	got := FilterKeywords(postings, []string{" Nurse "})
	if len(got) != 3 {
		t.Fatalf("expected 3 postings, got %d", len(got))
	}
	want := []string{"Nurse A", "Nurse B", "Nurse C"}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("order not preserved at %d: got %q want %q", i, got[i].Title, title)
		}
	}
}

func TestFilterKeywords_BlankKeywordsIgnored(t *testing.T) {
	postings := []job.Posting{{Title: "Plumber"}}

	got := FilterKeywords(postings, []string{"  ", ""})
	if len(got) != 1 {
		t.Fatalf("blank keywords should pass everything through, got %d", len(got))
	}
}
