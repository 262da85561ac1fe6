package telemetry

import "math"

// noFixEpsilon marks the (0,0) GPS sentinel. Readings that close to the
// equator/prime-meridian intersection mean "no fix yet", not a real position.
const noFixEpsilon = 0.0001

// IsValidCoordinate reports whether a latitude/longitude pair is plottable:
// finite, inside [-90,90]x[-180,180], and not the no-fix sentinel.
func IsValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	if math.Abs(lat) < noFixEpsilon && math.Abs(lon) < noFixEpsilon {
		return false
	}
	return true
}
