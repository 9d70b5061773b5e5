package dto

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResponse struct {
	ClientID    string `json:"client_id"`
	ResultCount int    `json:"result_count"`
}
