package services

import (
	"sync"

	"github.com/gorilla/websocket"

	"sproutly/models"
)

// WSClient is one live progress subscription, keyed by stats key so a
// user's open screens all see the same pushes.
type WSClient struct {
	Key  string
	Conn *websocket.Conn
}

// ProgressHub fans accumulator updates out to connected clients. Writes
// happen under the hub lock; gorilla connections do not allow concurrent
// writers.
type ProgressHub struct {
	mu      sync.Mutex
	clients map[string]map[*WSClient]bool
}

func NewProgressHub() *ProgressHub {
	return &ProgressHub{clients: make(map[string]map[*WSClient]bool)}
}

func (h *ProgressHub) Register(c *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.Key] == nil {
		h.clients[c.Key] = make(map[*WSClient]bool)
	}
	h.clients[c.Key][c] = true
}

func (h *ProgressHub) Unregister(c *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[c.Key]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Key)
		}
	}
}

// BroadcastStats pushes a fresh snapshot to every subscriber of the key.
// Dead connections are dropped; the next read loop iteration on the
// client side closes them fully.
func (h *ProgressHub) BroadcastStats(key string, stats *models.UserStats) {
	msg := map[string]any{
		"kind":  "stats.updated",
		"stats": stats,
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[key] {
		if err := c.Conn.WriteJSON(msg); err != nil {
			c.Conn.Close()
			delete(h.clients[key], c)
		}
	}
}
