package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobscout/internal/config"
	"jobscout/internal/domain/job"
	"jobscout/internal/pkg/logging"
)

const (
	defaultBaseURL = "https://serpapi.com"
	searchTimeout  = 30 * time.Second
)

// SearchProvider executes one search against the external job search
// provider. On any failure it returns an empty list and a descriptive error;
// nothing past this boundary sees the provider's wire format.
type SearchProvider interface {
	Search(ctx context.Context, query, region string) ([]job.Posting, error)
}

// SerpAPIClient queries a SerpAPI-style Google Jobs endpoint.
type SerpAPIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *logging.Logger
}

func NewSerpAPIClient(cfg config.SerpAPIConfig, logger *logging.Logger) *SerpAPIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SerpAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: searchTimeout},
		logger:  logger,
	}
}

type searchResponse struct {
	JobsResults []searchResult `json:"jobs_results"`
}

type searchResult struct {
	Title              string `json:"title"`
	CompanyName        string `json:"company_name"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	ApplyLink          string `json:"job_apply_link"`
	DetectedExtensions struct {
		PostedAt string `json:"posted_at"`
	} `json:"detected_extensions"`
}

func (c *SerpAPIClient) Search(ctx context.Context, query, region string) ([]job.Posting, error) {
	if c.apiKey == "" {
		return nil, errors.New("serpapi: api key not configured")
	}
	if query == "" {
		return nil, errors.New("serpapi: query is required")
	}

	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", query)
	params.Set("hl", "en")
	params.Set("api_key", c.apiKey)
	if region != "" {
		params.Set("location", region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("serpapi: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("serpapi: decode response: %w", err)
	}

	postings := make([]job.Posting, 0, len(payload.JobsResults))
	for _, r := range payload.JobsResults {
		postings = append(postings, job.Posting{
			Title:       r.Title,
			Company:     r.CompanyName,
			Location:    r.Location,
			ApplyLink:   r.ApplyLink,
			PostedDate:  r.DetectedExtensions.PostedAt,
			Description: r.Description,
		})
	}

	c.logger.Debug("provider search completed", "query", query, "results", len(postings))
	return postings, nil
}
