package telemetry

import (
	"math"
	"testing"
)

func TestBuildTrailSortsAndFilters(t *testing.T) {
	rec := BoatRecord{History: map[string]HistoryEntry{
		"100_1": {"lat": float64(1), "lon": float64(1)},
		"50_2":  {"lat": float64(2), "lon": float64(2)},
		"200_3": {"lat": float64(0), "lon": float64(0)}, // no fix, dropped
	}}
	trail := BuildTrail(rec)
	if len(trail) != 2 {
		t.Fatalf("expected invalid entry to be dropped, got %d points", len(trail))
	}
	if trail[0].Timestamp != 50 || trail[0].Latitude != 2 {
		t.Fatalf("unexpected first point: %+v", trail[0])
	}
	if trail[1].Timestamp != 100 || trail[1].Latitude != 1 {
		t.Fatalf("unexpected second point: %+v", trail[1])
	}
}

func TestBuildTrailEmptyHistory(t *testing.T) {
	if got := BuildTrail(BoatRecord{}); got != nil {
		t.Fatalf("expected nil trail for absent history, got %v", got)
	}
}

func TestBuildTrailTimestampFallbacks(t *testing.T) {
	rec := BoatRecord{History: map[string]HistoryEntry{
		// Key prefix unparseable, embedded numeric field takes over.
		"bad_1": {"latitude": float64(3), "longitude": float64(3), "ts": float64(75)},
		// Neither key nor embedded field, defaults to 0.
		"worse_2": {"latitude": float64(4), "longitude": float64(4)},
	}}
	trail := BuildTrail(rec)
	if len(trail) != 2 {
		t.Fatalf("expected both entries, got %d", len(trail))
	}
	if trail[0].Timestamp != 0 || trail[0].Latitude != 4 {
		t.Fatalf("expected defaulted entry first, got %+v", trail[0])
	}
	if trail[1].Timestamp != 75 || trail[1].Latitude != 3 {
		t.Fatalf("expected embedded-field entry second, got %+v", trail[1])
	}
}

func TestBuildTrailFieldVariants(t *testing.T) {
	rec := BoatRecord{History: map[string]HistoryEntry{
		// Explicit keys win when both variants disagree.
		"10_1": {"latitude": float64(5), "longitude": float64(6), "lat": float64(50), "lon": float64(60)},
	}}
	trail := BuildTrail(rec)
	if len(trail) != 1 || trail[0].Latitude != 5 || trail[0].Longitude != 6 {
		t.Fatalf("expected explicit field variant to win, got %+v", trail)
	}
}

func TestTrailRegionAppendsLatest(t *testing.T) {
	points := []TrailPoint{{Latitude: 14.0, Longitude: 120.0, Timestamp: 10}}
	latest := Sample{"lat": float64(14.2), "lon": float64(120.2)}
	got := TrailRegion(points, latest)
	if math.Abs(got.CenterLatitude-14.1) > 1e-9 || math.Abs(got.CenterLongitude-120.1) > 1e-9 {
		t.Fatalf("expected latest fix to widen the box, got %+v", got)
	}
	if got.LatitudeSpan < 0.01 || got.LongitudeSpan < 0.01 {
		t.Fatalf("expected trail minimum span, got %+v", got)
	}
}

func TestTrailRegionIgnoresInvalidLatest(t *testing.T) {
	points := []TrailPoint{{Latitude: 14.0, Longitude: 120.0}}
	got := TrailRegion(points, Sample{"lat": float64(0), "lon": float64(0)})
	if got.CenterLatitude != 14.0 || got.CenterLongitude != 120.0 {
		t.Fatalf("expected no-fix latest to be ignored, got %+v", got)
	}
}

func TestTrailRegionEmpty(t *testing.T) {
	if got := TrailRegion(nil, nil); got != DefaultRegion {
		t.Fatalf("expected default viewport for empty trail, got %+v", got)
	}
}
