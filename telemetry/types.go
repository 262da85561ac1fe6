package telemetry

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Status is the classified condition of a boat derived from its latest sample.
type Status string

const (
	StatusNormal  Status = "normal"
	StatusOffline Status = "offline"
	StatusSOS     Status = "sos"
)

// Sample is the loosely-typed field bag a boat reports. The backend does not
// own a schema, so numeric fields may arrive as numbers or numeric strings,
// and coordinates may use either the "latitude"/"longitude" or the legacy
// "lat"/"lon" keys.
type Sample map[string]interface{}

// HistoryEntry carries the same positional fields as a Sample, keyed in the
// parent record by a "<unixSeconds>_<sequence>" composite string.
type HistoryEntry map[string]interface{}

// BoatInfo holds the static registration data a boat may carry.
type BoatInfo struct {
	Owner string `json:"owner"`
}

// BoatRecord is one boat's full backend state.
type BoatRecord struct {
	Latest  Sample                  `json:"latest,omitempty"`
	History map[string]HistoryEntry `json:"history,omitempty"`
	Info    *BoatInfo               `json:"info,omitempty"`
}

// Snapshot is the complete fleet state delivered wholesale on every feed
// event. It is always replaced, never merged.
type Snapshot map[string]BoatRecord

// BoatSummary is the view-ready projection of one BoatRecord. Recomputed on
// every snapshot, never stored.
type BoatSummary struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	Status      Status  `json:"status"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Plottable   bool    `json:"plottable"`
	// AgeSeconds is -1 when the sample timestamp failed to parse; display
	// layers show that as "Unknown" rather than a huge number.
	AgeSeconds int64  `json:"ageSeconds"`
	Latest     Sample `json:"latest,omitempty"`
}

// Marker is a plottable boat position.
type Marker struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    Status  `json:"status"`
}

// Region is a map viewport: center plus axis spans.
type Region struct {
	CenterLatitude  float64 `json:"centerLatitude"`
	CenterLongitude float64 `json:"centerLongitude"`
	LatitudeSpan    float64 `json:"latitudeSpan"`
	LongitudeSpan   float64 `json:"longitudeSpan"`
}

// TrailPoint is one position on a boat's historical track.
type TrailPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// AsFloat coerces a loosely typed JSON value to float64.
func AsFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// resolveCoordinate applies the field-name precedence rule: the explicit key
// wins over the legacy one whenever it holds a usable value.
func resolveCoordinate(fields map[string]interface{}, explicit, legacy string) (float64, bool) {
	if v, ok := fields[explicit]; ok {
		if f, ok := AsFloat(v); ok {
			return f, true
		}
	}
	if v, ok := fields[legacy]; ok {
		return AsFloat(v)
	}
	return 0, false
}

// Coordinate resolves the sample's position, preferring "latitude"/"longitude"
// over "lat"/"lon". ok is false when either axis is missing or non-numeric.
func (s Sample) Coordinate() (lat, lon float64, ok bool) {
	lat, latOK := resolveCoordinate(s, "latitude", "lat")
	lon, lonOK := resolveCoordinate(s, "longitude", "lon")
	return lat, lon, latOK && lonOK
}

// SOSActive reports whether the sample's SOS flag equals the integer 1.
func (s Sample) SOSActive() bool {
	f, ok := AsFloat(s["sos"])
	return ok && f == 1
}

// TimestampString returns the sample's raw timestamp field, or "".
func (s Sample) TimestampString() string {
	v, _ := s["timestamp"].(string)
	return v
}

// Float returns a numeric field after coercion.
func (s Sample) Float(key string) (float64, bool) {
	return AsFloat(s[key])
}
