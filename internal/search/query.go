package search

import (
	"fmt"

	"jobscout/internal/domain/client"
)

// BuildQuery turns a client profile into a provider search query. A non-empty
// override is the caller's intent and is returned unchanged.
func BuildQuery(profile client.Profile, override string) string {
	if override != "" {
		return override
	}
	return fmt.Sprintf("%s jobs %s", profile.Profession, profile.Location)
}
