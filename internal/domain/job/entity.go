package job

import "time"

// Posting is a normalized job listing from the search provider. Missing
// provider fields become empty strings so downstream consumers never see
// nulls. ApplyLink is the deduplication key within a client's store.
type Posting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	ApplyLink   string `json:"apply_link"`
	PostedDate  string `json:"posted_date"`
	Description string `json:"description,omitempty"`
}

// RunStatus is the metadata of the most recent completed pipeline run for a
// client. LastRunAt is nil when the client has never run.
type RunStatus struct {
	ClientID    string     `json:"client_id"`
	LastRunAt   *time.Time `json:"last_run_at"`
	ResultCount int        `json:"result_count"`
}
