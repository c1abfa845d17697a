package realtime

import (
	"sync"
	"time"
)

// UrgentAlert is the blocking in-app prompt pushed for thresholds of ten
// minutes or less. The client renders a live countdown to SaleDate.
type UrgentAlert struct {
	EventID    string    `json:"eventId"`
	EventTitle string    `json:"eventTitle"`
	Message    string    `json:"message"`
	SaleDate   time.Time `json:"saleDate"`
	TicketURL  string    `json:"ticketUrl,omitempty"`
}

type message struct {
	Type  string       `json:"type"`
	Alert *UrgentAlert `json:"alert,omitempty"`
}

// Hub tracks open websocket connections per user and the user's current
// urgent alert. At most one alert is live per user; a newer match overwrites
// the one on display.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*client]struct{}
	pending map[string]*UrgentAlert
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		pending: make(map[string]*UrgentAlert),
	}
}

// PushUrgent replaces the user's current urgent alert and fans it out to
// every open connection. Connections that cannot keep up are skipped; the
// alert stays pending and is re-delivered on the next connect.
func (h *Hub) PushUrgent(userID string, alert UrgentAlert) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.pending[userID] = &alert

	for c := range h.clients[userID] {
		select {
		case c.send <- message{Type: "urgent", Alert: &alert}:
		default:
		}
	}
}

// DismissUrgent clears the user's pending alert and tells open connections
// to take it down.
func (h *Hub) DismissUrgent(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.pending, userID)

	for c := range h.clients[userID] {
		select {
		case c.send <- message{Type: "dismiss"}:
		default:
		}
	}
}

func (h *Hub) register(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}
	h.clients[userID][c] = struct{}{}

	// A freshly connected client immediately sees the alert it may have
	// missed while disconnected.
	if alert := h.pending[userID]; alert != nil {
		select {
		case c.send <- message{Type: "urgent", Alert: alert}:
		default:
		}
	}
}

func (h *Hub) unregister(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns := h.clients[userID]; conns != nil {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.clients, userID)
		}
	}
}
