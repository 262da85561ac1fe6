package feed

import (
	"encoding/json"
	"fmt"

	"boattracker-viz/telemetry"
)

type rawInfo struct {
	Owner string `json:"owner"`
}

type rawRecord struct {
	Latest  map[string]interface{}            `json:"latest"`
	History map[string]map[string]interface{} `json:"history"`
	Info    *rawInfo                          `json:"info"`
}

// DecodeSnapshot parses a whole-snapshot payload: a JSON object mapping boat
// IDs to records. Field values inside latest/history stay loosely typed; the
// telemetry package does all coercion at derivation time.
func DecodeSnapshot(payload []byte) (telemetry.Snapshot, error) {
	var raw map[string]rawRecord
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snap := make(telemetry.Snapshot, len(raw))
	for id, rr := range raw {
		rec := telemetry.BoatRecord{}
		if rr.Latest != nil {
			rec.Latest = telemetry.Sample(rr.Latest)
		}
		if len(rr.History) > 0 {
			rec.History = make(map[string]telemetry.HistoryEntry, len(rr.History))
			for key, entry := range rr.History {
				rec.History[key] = telemetry.HistoryEntry(entry)
			}
		}
		if rr.Info != nil {
			rec.Info = &telemetry.BoatInfo{Owner: rr.Info.Owner}
		}
		snap[id] = rec
	}
	return snap, nil
}
