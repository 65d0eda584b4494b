package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/itz-Mayank/Environmental-Sustainability/logger"
	"github.com/itz-Mayank/Environmental-Sustainability/metrics"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	mu sync.Mutex
}

// Write sends one message on the connection. gorilla/websocket allows only a
// single concurrent writer, so every write must go through here.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans live readings and triggered alerts out to connected
// websocket clients, keyed by user.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
	metrics.StreamClientsConnected.Inc()
}

// Unregister removes a client and closes its connection. Safe to call more
// than once for the same client; only the first call counts.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	set := h.clients[c.UserID]
	_, present := set[c]
	if present {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()

	if !present {
		return
	}
	_ = c.Conn.Close()
	metrics.StreamClientsConnected.Dec()
}

// Users returns the ids of users with at least one connected client.
func (h *RealtimeHub) Users() []uint {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]uint, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// Broadcast sends payload to every client of userID. Clients whose write
// fails are unregistered.
func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		log := logger.WithComponent("realtime")
		log.Error().Err(err).Msg("broadcast payload not serializable")
		return
	}

	h.mu.RLock()
	var failed []*WSClient
	for c := range h.clients[userID] {
		if err := c.Write(websocket.TextMessage, msg); err != nil {
			failed = append(failed, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range failed {
		h.Unregister(c)
	}
}
