package search

import (
	"strings"

	"jobscout/internal/domain/job"
)

// FilterKeywords keeps postings where at least one keyword appears
// (case-insensitive) in the combined title + description text. An empty
// keyword list passes every posting through. Order is preserved; this stage
// never deduplicates.
func FilterKeywords(postings []job.Posting, keywords []string) []job.Posting {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		terms = append(terms, kw)
	}
	if len(terms) == 0 {
		return postings
	}

	out := make([]job.Posting, 0, len(postings))
	for _, p := range postings {
		combined := strings.ToLower(p.Title + " " + p.Description)
		for _, term := range terms {
			if strings.Contains(combined, term) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
