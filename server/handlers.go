package server

import (
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"boattracker-viz/telemetry"
)

func (s *FleetServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func (s *FleetServer) handleFleet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.fleetView())
}

func (s *FleetServer) handleBoat(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, ok := s.store.Boat(id)
	if !ok {
		http.Error(w, "boat not found: "+id, http.StatusNotFound)
		return
	}

	// Normalizing the single record reuses the exact list-panel derivation.
	sums := telemetry.Normalize(telemetry.Snapshot{id: rec},
		s.now().Unix(), s.opts.OfflineThreshold, s.opts.Location)

	writeJSON(w, map[string]interface{}{
		"boat":    sums[0],
		"history": len(rec.History),
	})
}

func (s *FleetServer) handleTrail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, ok := s.store.Boat(id)
	if !ok {
		http.Error(w, "boat not found: "+id, http.StatusNotFound)
		return
	}

	trail := telemetry.BuildTrail(rec)
	writeJSON(w, map[string]interface{}{
		"id":     id,
		"points": trail,
		"region": telemetry.TrailRegion(trail, rec.Latest),
	})
}

func (s *FleetServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	state, errMsg := s.feed.State()
	writeJSON(w, map[string]interface{}{
		"state":     string(state),
		"error":     errMsg,
		"connected": s.feed.IsConnected(),
		"feed":      s.feed.Stats().GetSnapshot(),
		"store":     s.store.Stats(),
		"events":    s.store.RecentEvents(20),
		"clients":   s.hub.Count(),
	})
}

// handleQR renders a QR code for the UI URL so the live map opens on a phone
// with one scan.
func (s *FleetServer) handleQR(w http.ResponseWriter, r *http.Request) {
	target := s.opts.PublicURL
	if target == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		target = scheme + "://" + r.Host + "/"
	}

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "qr encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
