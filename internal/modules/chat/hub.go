package chat

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub keeps one live websocket per user for realtime message delivery.
// Delivery is best effort; the DB copy is the source of truth.
type Hub struct {
	mu    sync.RWMutex
	conns map[int64]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[int64]*websocket.Conn)}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.conns[userID]; ok && old != nil {
		_ = old.Close()
	}
	h.conns[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.conns[userID]; ok && conn != nil {
		_ = conn.Close()
		delete(h.conns, userID)
	}
}

func (h *Hub) SendToUser(userID int64, message any) bool {
	h.mu.RLock()
	conn, ok := h.conns[userID]
	h.mu.RUnlock()

	if !ok || conn == nil {
		return false
	}
	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, conn := range h.conns {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.conns, userID)
	}
}
