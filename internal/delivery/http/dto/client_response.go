package dto

import "time"

type RunStatusResponse struct {
	LastRunAt   *time.Time `json:"last_run_at"`
	ResultCount int        `json:"result_count"`
}

type ClientResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Profession string            `json:"profession"`
	Location   string            `json:"location"`
	Email      string            `json:"email,omitempty"`
	SearchTime string            `json:"search_time,omitempty"`
	Keywords   []string          `json:"keywords,omitempty"`
	RunStatus  RunStatusResponse `json:"run_status"`
}

type RefreshResponse struct {
	Clients int `json:"clients"`
}
