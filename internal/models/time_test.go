package models

import (
	"testing"
	"time"
)

func TestParseNaiveTime(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		// A trailing Z is discarded, not converted.
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-05-02T09:14:33", time.Date(2024, 5, 2, 9, 14, 33, 0, time.UTC), false},
		{"2024-05-02T09:14:33.250Z", time.Date(2024, 5, 2, 9, 14, 33, 250_000_000, time.UTC), false},
		{"  2024-01-01T00:00:00Z ", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-01-01", time.Time{}, true},
		{"2024-01-01T00:00:00+02:00", time.Time{}, true},
		{"not-a-timestamp", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tc := range cases {
		got, err := ParseNaiveTime(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseNaiveTime(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNaiveTime(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseNaiveTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
