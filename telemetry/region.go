package telemetry

import "math"

// DefaultRegion frames the fleet's home waters when no boat is plottable.
var DefaultRegion = Region{
	CenterLatitude:  15.22,
	CenterLongitude: 120.58,
	LatitudeSpan:    0.5,
	LongitudeSpan:   0.5,
}

const (
	// singleMarkerSpan is the tight zoom used for a lone boat.
	singleMarkerSpan = 0.05
	// fleetPadding widens the bounding box so markers don't sit on the edge.
	fleetPadding = 1.5
	// fleetMinSpan stops the map over-zooming when markers coincide.
	fleetMinSpan = 0.05
)

// FitRegion computes a viewport framing the given markers. Zero markers yield
// DefaultRegion; one marker gets a fixed tight span; many get their padded
// bounding box with a minimum-span floor. Always recomputed from the full
// marker set, never incrementally updated.
func FitRegion(markers []Marker) Region {
	switch len(markers) {
	case 0:
		return DefaultRegion
	case 1:
		return Region{
			CenterLatitude:  markers[0].Latitude,
			CenterLongitude: markers[0].Longitude,
			LatitudeSpan:    singleMarkerSpan,
			LongitudeSpan:   singleMarkerSpan,
		}
	}

	minLat, maxLat := markers[0].Latitude, markers[0].Latitude
	minLon, maxLon := markers[0].Longitude, markers[0].Longitude
	for _, m := range markers[1:] {
		minLat = math.Min(minLat, m.Latitude)
		maxLat = math.Max(maxLat, m.Latitude)
		minLon = math.Min(minLon, m.Longitude)
		maxLon = math.Max(maxLon, m.Longitude)
	}

	return Region{
		CenterLatitude:  (minLat + maxLat) / 2,
		CenterLongitude: (minLon + maxLon) / 2,
		LatitudeSpan:    math.Max((maxLat-minLat)*fleetPadding, fleetMinSpan),
		LongitudeSpan:   math.Max((maxLon-minLon)*fleetPadding, fleetMinSpan),
	}
}
