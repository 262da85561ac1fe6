package telemetry

import (
	"sort"
	"time"
)

// Normalize flattens a snapshot into view-ready boat summaries. It emits one
// summary per record regardless of coordinate validity; the list panel shows
// every known boat, and Markers does the plottable filtering for the map.
//
// Go map iteration is randomized, so summaries are emitted in sorted-ID order
// to keep renders stable. Callers must still key on ID, not list position.
func Normalize(snap Snapshot, now int64, threshold int64, loc *time.Location) []BoatSummary {
	if len(snap) == 0 {
		return nil
	}

	ids := make([]string, 0, len(snap))
	for id := range snap {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]BoatSummary, 0, len(ids))
	for _, id := range ids {
		rec := snap[id]

		sum := BoatSummary{
			ID:          id,
			DisplayName: "Boat " + id,
			Status:      Classify(rec.Latest, now, threshold, loc),
			AgeSeconds:  -1,
			Latest:      rec.Latest,
		}
		if rec.Info != nil && rec.Info.Owner != "" {
			sum.DisplayName = rec.Info.Owner
		}

		if rec.Latest != nil {
			if lat, lon, ok := rec.Latest.Coordinate(); ok {
				sum.Latitude = lat
				sum.Longitude = lon
				sum.Plottable = IsValidCoordinate(lat, lon)
			}
			if ts := ParseTimestamp(rec.Latest.TimestampString(), loc); ts > 0 {
				sum.AgeSeconds = now - ts
			}
		}

		out = append(out, sum)
	}
	return out
}

// Markers extracts the plottable subset of a summary list for the map layer.
func Markers(summaries []BoatSummary) []Marker {
	markers := make([]Marker, 0, len(summaries))
	for _, s := range summaries {
		if !s.Plottable {
			continue
		}
		markers = append(markers, Marker{
			ID:        s.ID,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
			Status:    s.Status,
		})
	}
	return markers
}
