package telemetry

import "time"

// DefaultOfflineThreshold is the maximum sample age, in seconds, before a
// boat without an active SOS flag is considered offline.
const DefaultOfflineThreshold int64 = 300

// Classify maps a boat's latest sample to a status. A nil sample is offline.
// An active SOS flag wins over staleness. Otherwise the sample's parsed
// timestamp is compared against now; unparseable timestamps resolve to epoch
// zero and therefore to offline.
func Classify(latest Sample, now int64, threshold int64, loc *time.Location) Status {
	if latest == nil {
		return StatusOffline
	}
	if latest.SOSActive() {
		return StatusSOS
	}
	if threshold <= 0 {
		threshold = DefaultOfflineThreshold
	}
	age := now - ParseTimestamp(latest.TimestampString(), loc)
	if age > threshold {
		return StatusOffline
	}
	return StatusNormal
}
