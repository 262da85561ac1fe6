package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub fans snapshot-derived views out to stream clients. Slow clients drop
// frames rather than block the feed; only the latest view matters.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]chan []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]chan []byte)}
}

func (h *Hub) Subscribe() (string, chan []byte) {
	id := uuid.NewString()
	ch := make(chan []byte, 4)

	h.mu.Lock()
	h.clients[id] = ch
	h.mu.Unlock()

	return id, ch
}

func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}

func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.clients {
		select {
		case ch <- payload:
		default:
			// Client is behind, drop the frame.
		}
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// handleStream pushes one JSON fleet view per snapshot event over SSE,
// starting with the current view so clients render immediately.
func (s *FleetServer) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	id, ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(id)

	send := func(payload []byte) {
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	if initial, err := marshalView(s.fleetView()); err == nil {
		send(initial)
	}

	keepalive := time.NewTicker(25 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case payload := <-ch:
			send(payload)
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The map UI is served from the same origin, but phones on a LAN reach
	// the server by IP, so the origin check stays permissive.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebsocket mirrors the SSE stream for clients that prefer a socket.
func (s *FleetServer) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HTTP] Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	id, ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(id)

	log.Printf("[HTTP] Websocket client %s connected", id)

	// Reader goroutine consumes control frames and signals close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if initial, err := marshalView(s.fleetView()); err == nil {
		if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
			return
		}
	}

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case payload := <-ch:
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case <-closed:
			log.Printf("[HTTP] Websocket client %s disconnected", id)
			return
		case <-r.Context().Done():
			return
		}
	}
}
