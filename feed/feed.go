package feed

import (
	"sync"
	"time"
)

// State is the connection lifecycle surfaced to the UI.
type State string

const (
	// StateLoading holds until the first snapshot or the first-event timeout.
	StateLoading State = "loading"
	// StateEmpty means the first-event timer fired before any data arrived.
	StateEmpty State = "empty"
	// StateConnected means at least one snapshot has been delivered.
	StateConnected State = "connected"
	// StateError means the subscription delivered an error event.
	StateError State = "error"
)

// Config holds feed subscription settings.
type Config struct {
	Broker          string
	Port            int
	Username        string
	Password        string
	Topic           string
	UseTLS          bool
	InsecureSkipTLS bool

	ConnectTimeout time.Duration
	// FirstEventTimeout races the first snapshot to resolve the initial
	// loading state to empty.
	FirstEventTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Broker:            "localhost",
		Port:              1883,
		Topic:             "boats",
		ConnectTimeout:    10 * time.Second,
		FirstEventTimeout: 8 * time.Second,
	}
}

// Statistics tracks feed throughput.
type Statistics struct {
	mu                sync.RWMutex
	SnapshotsReceived int64
	DecodeFailures    int64
	BoatsLastSnapshot int
	LastUpdate        time.Time
	StartTime         time.Time
}

func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{StartTime: now, LastUpdate: now}
}

func (s *Statistics) RecordSnapshot(boats int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ok {
		s.SnapshotsReceived++
		s.BoatsLastSnapshot = boats
	} else {
		s.DecodeFailures++
	}
	s.LastUpdate = time.Now()
}

func (s *Statistics) GetSnapshot() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uptime := time.Since(s.StartTime)
	perSec := 0.0
	if uptime.Seconds() > 0 {
		perSec = float64(s.SnapshotsReceived) / uptime.Seconds()
	}

	return map[string]interface{}{
		"snapshots_received":  s.SnapshotsReceived,
		"decode_failures":     s.DecodeFailures,
		"boats_last_snapshot": s.BoatsLastSnapshot,
		"snapshots_per_sec":   perSec,
		"uptime_seconds":      uptime.Seconds(),
		"last_update":         s.LastUpdate,
	}
}
