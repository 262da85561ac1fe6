package telemetry

import (
	"strings"
	"time"
)

// timestampLayout matches the feed's space-separated date-time strings, which
// carry no zone marker.
const timestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses a "YYYY-MM-DD HH:MM:SS" string in the given location
// and returns unix seconds. It returns 0 on empty input or any parse failure;
// callers must treat 0 as "unknown, very old", which classifies a boat
// offline by construction.
//
// The location is an explicit parameter because the feed does not say whether
// its timestamps are local or UTC; a nil location means time.Local.
func ParseTimestamp(s string, loc *time.Location) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(timestampLayout, s, loc)
	if err != nil {
		return 0
	}
	return t.Unix()
}
