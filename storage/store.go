package storage

import (
	"sync"
	"time"

	"boattracker-viz/telemetry"
)

// FeedEvent records one snapshot delivery for the status surface.
type FeedEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Boats     int       `json:"boats"`
	Bytes     int       `json:"bytes"`
	OK        bool      `json:"ok"`
}

// Store holds the latest fleet snapshot and a fixed-capacity ring of recent
// feed events. Snapshot semantics are strictly last-snapshot-wins: Replace
// swaps the whole fleet state, there is no merge path and no defense against
// out-of-order delivery.
type Store struct {
	mu      sync.RWMutex
	current telemetry.Snapshot
	updated time.Time

	eventsMu sync.RWMutex
	events   []FeedEvent
	head     int
	size     int
	capacity int
}

func NewStore(eventCapacity int) *Store {
	if eventCapacity <= 0 {
		eventCapacity = 256
	}
	return &Store{
		events:   make([]FeedEvent, eventCapacity),
		capacity: eventCapacity,
	}
}

// Replace installs a new snapshot wholesale.
func (s *Store) Replace(snap telemetry.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snap
	s.updated = time.Now()
}

// Current returns the latest snapshot. May be nil before the first event.
func (s *Store) Current() telemetry.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Boat returns one boat's record from the current snapshot.
func (s *Store) Boat(id string) (telemetry.BoatRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.current[id]
	return rec, ok
}

// UpdatedAt returns when the current snapshot arrived; zero before the first.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}

// RecordEvent appends a feed event to the ring, evicting the oldest entry
// once the ring is full.
func (s *Store) RecordEvent(ev FeedEvent) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	s.events[s.head] = ev
	s.head = (s.head + 1) % s.capacity
	if s.size < s.capacity {
		s.size++
	}
}

// RecentEvents returns up to n events, newest first.
func (s *Store) RecentEvents(n int) []FeedEvent {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()

	if n > s.size {
		n = s.size
	}
	result := make([]FeedEvent, n)
	for i := 0; i < n; i++ {
		idx := (s.head - 1 - i + s.capacity) % s.capacity
		result[i] = s.events[idx]
	}
	return result
}

// Stats summarizes the store for the status endpoint.
func (s *Store) Stats() map[string]interface{} {
	s.mu.RLock()
	boats := len(s.current)
	updated := s.updated
	s.mu.RUnlock()

	s.eventsMu.RLock()
	size := s.size
	capacity := s.capacity
	oldest := time.Time{}
	newest := time.Time{}
	if size > 0 {
		oldestIdx := (s.head - size + capacity) % capacity
		oldest = s.events[oldestIdx].Timestamp
		newestIdx := (s.head - 1 + capacity) % capacity
		newest = s.events[newestIdx].Timestamp
	}
	s.eventsMu.RUnlock()

	return map[string]interface{}{
		"boats":               boats,
		"snapshot_updated_at": updated,
		"event_log_size":      size,
		"event_log_capacity":  capacity,
		"oldest_event":        oldest,
		"newest_event":        newest,
	}
}
