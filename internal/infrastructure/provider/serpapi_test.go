package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobscout/internal/config"
)

func TestSerpAPIClient_Search(t *testing.T) {
	var gotQuery, gotEngine, gotLocation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotEngine = r.URL.Query().Get("engine")
		gotLocation = r.URL.Query().Get("location")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"jobs_results": [
				{
					"title": "Electrician",
					"company_name": "Acme Ltd",
					"location": "Auckland",
					"description": "Commercial work",
					"job_apply_link": "https://jobs.example/1",
					"detected_extensions": {"posted_at": "2 days ago"}
				},
				{"title": "Sparky"}
			]
		}`))
	}))
	defer srv.Close()

	c := NewSerpAPIClient(config.SerpAPIConfig{APIKey: "key", BaseURL: srv.URL}, nil)

	postings, err := c.Search(context.Background(), "Electrician jobs Auckland", "New Zealand")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotEngine != "google_jobs" || gotQuery != "Electrician jobs Auckland" || gotLocation != "New Zealand" {
		t.Fatalf("unexpected request params: engine=%q q=%q location=%q", gotEngine, gotQuery, gotLocation)
	}
	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(postings))
	}

	first := postings[0]
	if first.Title != "Electrician" || first.Company != "Acme Ltd" || first.ApplyLink != "https://jobs.example/1" {
		t.Fatalf("unexpected posting: %+v", first)
	}
	if first.PostedDate != "2 days ago" {
		t.Fatalf("unexpected posted date: %q", first.PostedDate)
	}

	// Missing fields normalize to empty strings.
	second := postings[1]
	if second.Title != "Sparky" || second.Company != "" || second.ApplyLink != "" || second.PostedDate != "" {
		t.Fatalf("missing fields should be empty strings: %+v", second)
	}
}

func TestSerpAPIClient_Search_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewSerpAPIClient(config.SerpAPIConfig{APIKey: "key", BaseURL: srv.URL}, nil)

	_, err := c.Search(context.Background(), "query", "")
	if err == nil {
		t.Fatalf("expected error on non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry the status code, got %v", err)
	}
}

func TestSerpAPIClient_Search_RequiresConfig(t *testing.T) {
	c := NewSerpAPIClient(config.SerpAPIConfig{}, nil)
	if _, err := c.Search(context.Background(), "query", ""); err == nil {
		t.Fatalf("expected error when api key is missing")
	}

	c = NewSerpAPIClient(config.SerpAPIConfig{APIKey: "key"}, nil)
	if _, err := c.Search(context.Background(), "", ""); err == nil {
		t.Fatalf("expected error on empty query")
	}
}
