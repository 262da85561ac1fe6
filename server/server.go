package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"boattracker-viz/feed"
	"boattracker-viz/storage"
	"boattracker-viz/telemetry"
)

// FeedStatus is what the server needs from the subscriber.
type FeedStatus interface {
	State() (feed.State, string)
	Stats() *feed.Statistics
	IsConnected() bool
}

// Options tune the derivation the server runs per request/event.
type Options struct {
	OfflineThreshold int64
	Location         *time.Location
	PublicURL        string
}

// FleetServer renders the live fleet: a JSON API, an embedded map UI, and
// push streams that re-broadcast the derived view on every snapshot.
type FleetServer struct {
	store *storage.Store
	feed  FeedStatus
	hub   *Hub
	opts  Options

	now func() time.Time
}

func New(store *storage.Store, fs FeedStatus, opts Options) *FleetServer {
	if opts.OfflineThreshold <= 0 {
		opts.OfflineThreshold = telemetry.DefaultOfflineThreshold
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &FleetServer{
		store: store,
		feed:  fs,
		hub:   NewHub(),
		opts:  opts,
		now:   time.Now,
	}
}

// FleetView is the derived state pushed to every connected client.
type FleetView struct {
	State     string                  `json:"state"`
	Error     string                  `json:"error,omitempty"`
	Boats     []telemetry.BoatSummary `json:"boats"`
	Markers   []telemetry.Marker      `json:"markers"`
	Region    telemetry.Region        `json:"region"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// fleetView recomputes the whole view from the current snapshot. Derivation
// is synchronous and full, never incremental; the fleet is small enough that
// recomputing per event costs nothing.
func (s *FleetServer) fleetView() FleetView {
	state, errMsg := s.feed.State()

	snap := s.store.Current()
	boats := telemetry.Normalize(snap, s.now().Unix(), s.opts.OfflineThreshold, s.opts.Location)
	markers := telemetry.Markers(boats)

	return FleetView{
		State:     string(state),
		Error:     errMsg,
		Boats:     boats,
		Markers:   markers,
		Region:    telemetry.FitRegion(markers),
		UpdatedAt: s.store.UpdatedAt(),
	}
}

// HandleSnapshot is the feed's data callback: replace state, log the event,
// push the fresh view to every stream client.
func (s *FleetServer) HandleSnapshot(snap telemetry.Snapshot, size int) {
	s.store.Replace(snap)
	s.store.RecordEvent(storage.FeedEvent{
		Timestamp: time.Now(),
		Boats:     len(snap),
		Bytes:     size,
		OK:        true,
	})
	s.broadcastView()
}

// HandleFeedError surfaces a subscription error to connected clients.
func (s *FleetServer) HandleFeedError(err error) {
	s.store.RecordEvent(storage.FeedEvent{Timestamp: time.Now(), OK: false})
	log.Printf("[HTTP] Broadcasting feed error: %v", err)
	s.broadcastView()
}

func marshalView(v FleetView) ([]byte, error) {
	return json.Marshal(v)
}

func (s *FleetServer) broadcastView() {
	payload, err := marshalView(s.fleetView())
	if err != nil {
		log.Printf("[HTTP] Encode view failed: %v", err)
		return
	}
	s.hub.Broadcast(payload)
}

// Router wires the HTTP surface.
func (s *FleetServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods("GET")
	r.HandleFunc("/api/fleet", s.handleFleet).Methods("GET")
	r.HandleFunc("/api/boats/{id}", s.handleBoat).Methods("GET")
	r.HandleFunc("/api/boats/{id}/trail", s.handleTrail).Methods("GET")
	r.HandleFunc("/api/status", s.handleStatus).Methods("GET")
	r.HandleFunc("/api/stream", s.handleStream).Methods("GET")
	r.HandleFunc("/ws", s.handleWebsocket).Methods("GET")
	r.HandleFunc("/qr.png", s.handleQR).Methods("GET")
	return r
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] Encode response failed: %v", err)
	}
}
