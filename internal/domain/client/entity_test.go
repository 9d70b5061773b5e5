package client

import "testing"

func TestParseSchedule_Valid(t *testing.T) {
	cases := []struct {
		spec   string
		hour   int
		minute int
	}{
		{"09:30", 9, 30},
		{"9:30", 9, 30},
		{"0:00", 0, 0},
		{"23:59", 23, 59},
		{" 12:05 ", 12, 5},
	}

	for _, tc := range cases {
		got, err := ParseSchedule(tc.spec)
		if err != nil {
			t.Fatalf("ParseSchedule(%q): unexpected err: %v", tc.spec, err)
		}
		if got.Hour != tc.hour || got.Minute != tc.minute {
			t.Fatalf("ParseSchedule(%q) = %+v, want %d:%d", tc.spec, got, tc.hour, tc.minute)
		}
	}
}

func TestParseSchedule_Invalid(t *testing.T) {
	for _, spec := range []string{"", "930", "25:00", "12:60", "-1:30", "ab:cd", "12:30:00"} {
		if _, err := ParseSchedule(spec); err == nil {
			t.Fatalf("ParseSchedule(%q): expected error", spec)
		}
	}
}
