package telemetry

import (
	"math"
	"testing"
)

func TestFitRegionEmpty(t *testing.T) {
	if got := FitRegion(nil); got != DefaultRegion {
		t.Fatalf("expected default viewport, got %+v", got)
	}
}

func TestFitRegionSingleMarker(t *testing.T) {
	got := FitRegion([]Marker{{ID: "7", Latitude: 14.0, Longitude: 120.0}})
	if got.CenterLatitude != 14.0 || got.CenterLongitude != 120.0 {
		t.Fatalf("unexpected center: %+v", got)
	}
	if got.LatitudeSpan != 0.05 || got.LongitudeSpan != 0.05 {
		t.Fatalf("expected tight fixed span, got %+v", got)
	}
}

func TestFitRegionManyMarkers(t *testing.T) {
	got := FitRegion([]Marker{
		{Latitude: 10, Longitude: 100},
		{Latitude: 20, Longitude: 110},
	})
	if got.CenterLatitude != 15 || got.CenterLongitude != 105 {
		t.Fatalf("expected bounding-box midpoint, got %+v", got)
	}
	if math.Abs(got.LatitudeSpan-15) > 1e-9 || math.Abs(got.LongitudeSpan-15) > 1e-9 {
		t.Fatalf("expected 1.5x bounding-box span, got %+v", got)
	}
}

func TestFitRegionCoincidentMarkers(t *testing.T) {
	got := FitRegion([]Marker{
		{Latitude: 14.1, Longitude: 120.1},
		{Latitude: 14.1, Longitude: 120.1},
	})
	if got.LatitudeSpan < 0.05 || got.LongitudeSpan < 0.05 {
		t.Fatalf("expected minimum-span floor, got %+v", got)
	}
}
