package client

import (
	"fmt"
	"strconv"
	"strings"
)

// Profile is one job seeker from the client directory. It is replaced
// wholesale on every directory refresh and never mutated in place.
type Profile struct {
	ID             string
	Name           string
	Profession     string
	Location       string
	Email          string
	JobPreferences string
	SearchTime     string // "hh:mm" schedule spec, empty when unscheduled
	Keywords       []string
}

// Schedule is a parsed daily trigger time.
type Schedule struct {
	Hour   int
	Minute int
}

// ParseSchedule parses an "hh:mm" schedule spec. Clients with an empty or
// malformed spec are left unscheduled by the caller.
func ParseSchedule(spec string) (Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Schedule{}, fmt.Errorf("empty schedule spec")
	}

	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return Schedule{}, fmt.Errorf("schedule spec %q: want hh:mm", spec)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule spec %q: %w", spec, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule spec %q: %w", spec, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Schedule{}, fmt.Errorf("schedule spec %q: out of range", spec)
	}

	return Schedule{Hour: hour, Minute: minute}, nil
}
