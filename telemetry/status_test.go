package telemetry

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	loc := time.UTC
	got := ParseTimestamp("2024-12-14 15:45:23", loc)
	want := time.Date(2024, 12, 14, 15, 45, 23, 0, loc).Unix()
	if got != want {
		t.Fatalf("unexpected parse: got=%d want=%d", got, want)
	}
	if ParseTimestamp("", loc) != 0 {
		t.Fatal("expected empty input to yield 0")
	}
	if ParseTimestamp("garbage", loc) != 0 {
		t.Fatal("expected garbage input to yield 0")
	}
	if ParseTimestamp("2024-12-14T15:45:23Z", loc) != 0 {
		t.Fatal("expected RFC3339 shape to be rejected by the feed layout")
	}
}

func TestParseTimestampLocation(t *testing.T) {
	utc := ParseTimestamp("2024-12-14 15:45:23", time.UTC)
	manila := ParseTimestamp("2024-12-14 15:45:23", time.FixedZone("PHT", 8*3600))
	if utc-manila != 8*3600 {
		t.Fatalf("expected an 8h offset between zones, got %d", utc-manila)
	}
}

func TestClassifySOSWinsOverStaleness(t *testing.T) {
	now := time.Date(2024, 12, 14, 16, 0, 0, 0, time.UTC).Unix()
	sample := Sample{"sos": float64(1), "timestamp": "2020-01-01 00:00:00"}
	if got := Classify(sample, now, 300, time.UTC); got != StatusSOS {
		t.Fatalf("expected sos, got %s", got)
	}
}

func TestClassifyStaleness(t *testing.T) {
	loc := time.UTC
	base := time.Date(2024, 12, 14, 16, 0, 0, 0, loc)
	now := base.Unix()

	stale := Sample{"sos": float64(0), "timestamp": base.Add(-400 * time.Second).Format("2006-01-02 15:04:05")}
	if got := Classify(stale, now, 300, loc); got != StatusOffline {
		t.Fatalf("expected offline for 400s-old sample, got %s", got)
	}

	fresh := Sample{"sos": float64(0), "timestamp": base.Add(-10 * time.Second).Format("2006-01-02 15:04:05")}
	if got := Classify(fresh, now, 300, loc); got != StatusNormal {
		t.Fatalf("expected normal for 10s-old sample, got %s", got)
	}
}

func TestClassifyEdgeCases(t *testing.T) {
	now := time.Now().Unix()
	if got := Classify(nil, now, 300, time.UTC); got != StatusOffline {
		t.Fatalf("expected nil sample to be offline, got %s", got)
	}
	// Unparseable timestamp degrades to epoch zero, so offline.
	broken := Sample{"sos": float64(0), "timestamp": "not a time"}
	if got := Classify(broken, now, 300, time.UTC); got != StatusOffline {
		t.Fatalf("expected broken timestamp to be offline, got %s", got)
	}
	// SOS as a numeric string still counts, matching the feed's loose typing.
	sosStr := Sample{"sos": "1"}
	if got := Classify(sosStr, now, 300, time.UTC); got != StatusSOS {
		t.Fatalf("expected string sos flag to classify, got %s", got)
	}
}
