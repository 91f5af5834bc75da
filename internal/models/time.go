package models

import (
	"strings"
	"time"
)

// naiveLayout accepts ISO-8601 wall times with optional fractional seconds.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// ParseNaiveTime parses an ISO-8601 timestamp the way the rest of the system
// stores it: a trailing "Z" is stripped and the remainder is read as a
// zone-unqualified wall time. "2024-01-01T00:00:00Z" therefore becomes
// 2024-01-01T00:00:00, not a zone-converted instant. Timestamps with explicit
// numeric offsets are not accepted.
func ParseNaiveTime(s string) (time.Time, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	return time.Parse(naiveLayout, s)
}
