package telemetry

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	// trailPadding and trailMinSpan frame a single track for close-up
	// review, tighter than the fleet overview fitter.
	trailPadding = 1.2
	trailMinSpan = 0.01
)

// BuildTrail extracts, validates and time-orders a boat's history into a
// polyline-ready sequence. Entries with invalid coordinates are dropped.
//
// Each entry's timestamp comes from the numeric prefix of its composite
// "<unixSeconds>_<sequence>" key; a value-embedded numeric timestamp is the
// fallback, and 0 the default. The sort is stable, and history keys are
// walked in lexicographic order first so equal timestamps resolve
// deterministically despite randomized map iteration.
func BuildTrail(rec BoatRecord) []TrailPoint {
	if len(rec.History) == 0 {
		return nil
	}

	keys := make([]string, 0, len(rec.History))
	for k := range rec.History {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]TrailPoint, 0, len(keys))
	for _, key := range keys {
		entry := rec.History[key]
		lat, lon, ok := Sample(entry).Coordinate()
		if !ok || !IsValidCoordinate(lat, lon) {
			continue
		}
		points = append(points, TrailPoint{
			Latitude:  lat,
			Longitude: lon,
			Timestamp: entryTimestamp(key, entry),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
	return points
}

func entryTimestamp(key string, entry HistoryEntry) int64 {
	prefix, _, _ := strings.Cut(key, "_")
	if ts, err := strconv.ParseInt(prefix, 10, 64); err == nil {
		return ts
	}
	for _, field := range []string{"ts", "timestamp"} {
		if f, ok := AsFloat(entry[field]); ok {
			return int64(f)
		}
	}
	return 0
}

// TrailRegion fits a close-up viewport around a trail, appending the boat's
// current position as a synthetic trailing point when it is valid.
func TrailRegion(points []TrailPoint, latest Sample) Region {
	pts := points
	if latest != nil {
		if lat, lon, ok := latest.Coordinate(); ok && IsValidCoordinate(lat, lon) {
			pts = append(append([]TrailPoint(nil), points...), TrailPoint{Latitude: lat, Longitude: lon})
		}
	}
	if len(pts) == 0 {
		return DefaultRegion
	}

	minLat, maxLat := pts[0].Latitude, pts[0].Latitude
	minLon, maxLon := pts[0].Longitude, pts[0].Longitude
	for _, p := range pts[1:] {
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
		minLon = math.Min(minLon, p.Longitude)
		maxLon = math.Max(maxLon, p.Longitude)
	}

	return Region{
		CenterLatitude:  (minLat + maxLat) / 2,
		CenterLongitude: (minLon + maxLon) / 2,
		LatitudeSpan:    math.Max((maxLat-minLat)*trailPadding, trailMinSpan),
		LongitudeSpan:   math.Max((maxLon-minLon)*trailPadding, trailMinSpan),
	}
}
