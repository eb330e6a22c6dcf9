package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
)

// Event is the payload pushed to connected clients.
type Event struct {
	Type    string                         `json:"type"` // new_match, new_message
	Match   *repositories.MatchWithProfile `json:"match,omitempty"`
	Message *models.Message                `json:"message,omitempty"`
}

// Hub maintains the websocket connections of online profiles.
type Hub struct {
	clients map[uint]map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint]map[*websocket.Conn]bool),
	}
}

// AddClient registers a websocket connection for a profile.
func (h *Hub) AddClient(profileID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[profileID]; !ok {
		h.clients[profileID] = make(map[*websocket.Conn]bool)
	}
	h.clients[profileID][conn] = true
}

// RemoveClient removes a profile's websocket connection.
func (h *Hub) RemoveClient(profileID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[profileID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, profileID)
		}
	}
}

// Notify sends an event to every open connection of a profile. Offline
// profiles are silently skipped.
func (h *Hub) Notify(profileID uint, event Event) {
	h.mu.RLock()
	conns := h.clients[profileID]
	h.mu.RUnlock()

	payload, _ := json.Marshal(event)
	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("websocket write error: %v", err)
			conn.Close()
			h.RemoveClient(profileID, conn)
		}
	}
}
