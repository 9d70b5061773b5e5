package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobscout/internal/config"
	"jobscout/internal/domain/client"
	"jobscout/internal/pkg/logging"
)

const defaultBaseURL = "https://api.airtable.com"

// AirtableClient reads the client roster from an Airtable base. The roster
// read is all-or-nothing: any transport or payload failure returns an error
// and no partial roster.
type AirtableClient struct {
	baseURL   string
	apiKey    string
	tableName string
	client    *http.Client
	logger    *logging.Logger
}

// NewAirtableClient returns nil when the directory is not configured, so the
// caller can run with an empty roster.
func NewAirtableClient(cfg config.AirtableConfig, baseURL string, logger *logging.Logger) *AirtableClient {
	if cfg.APIKey == "" || cfg.BaseID == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AirtableClient{
		baseURL:   strings.TrimRight(baseURL, "/") + "/v0/" + cfg.BaseID + "/" + url.PathEscape(cfg.TableName),
		apiKey:    cfg.APIKey,
		tableName: cfg.TableName,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

type airtableResponse struct {
	Records []airtableRecord `json:"records"`
}

type airtableRecord struct {
	ID     string         `json:"id"`
	Fields airtableFields `json:"fields"`
}

type airtableFields struct {
	FullName       string   `json:"Full Name"`
	Skills         []string `json:"Skills"`
	Location       string   `json:"Location"`
	JobPreferences string   `json:"Job Preferences"`
	Email          string   `json:"Email Address"`
	SearchTime     string   `json:"Search Time"`
	Keywords       string   `json:"Keywords"`
}

func (c *AirtableClient) FetchClients(ctx context.Context) ([]client.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("airtable: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("airtable: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload airtableResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("airtable: decode response: %w", err)
	}

	profiles := make([]client.Profile, 0, len(payload.Records))
	for _, rec := range payload.Records {
		if rec.ID == "" || rec.Fields.FullName == "" {
			continue
		}
		profiles = append(profiles, mapRecord(rec))
	}

	c.logger.Debug("fetched client roster", "table", c.tableName, "records", len(payload.Records), "clients", len(profiles))
	return profiles, nil
}

func mapRecord(rec airtableRecord) client.Profile {
	profession := "Professional"
	if len(rec.Fields.Skills) > 0 && rec.Fields.Skills[0] != "" {
		profession = rec.Fields.Skills[0]
	}

	location := rec.Fields.Location
	if location == "" {
		location = "Remote"
	}

	return client.Profile{
		ID:             rec.ID,
		Name:           rec.Fields.FullName,
		Profession:     profession,
		Location:       location,
		Email:          rec.Fields.Email,
		JobPreferences: rec.Fields.JobPreferences,
		SearchTime:     rec.Fields.SearchTime,
		Keywords:       splitKeywords(rec.Fields.Keywords),
	}
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
