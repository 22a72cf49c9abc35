package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Events are hints, not state: the dashboard re-fetches the order
// list on receipt instead of trusting the payload, so a dropped or
// replayed websocket session can never corrupt what staff see.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
)

type Event struct {
	Kind    string `json:"kind"`
	OrderID string `json:"order_id"`
}

const (
	// seenCap bounds the re-alert window; older orders are always
	// re-fetchable from the order list.
	seenCap = 256

	// sendBuffer is the per-client event queue. A client that falls
	// further behind misses events and catches up on the next one.
	sendBuffer = 16

	pingInterval = 25 * time.Second
)

// Client is one connected dashboard. The connection is written from
// exactly one goroutine, WritePump: broadcasts and keepalive pings
// both queue through the send channel, since the websocket library
// supports a single concurrent writer per connection.
type Client struct {
	UserID string
	conn   *websocket.Conn
	send   chan []byte
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
}

// WritePump drains the send channel onto the connection and emits
// keepalive pings for proxies that drop idle connections. Returns
// when the channel is closed or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logrus.WithError(err).WithField("user", c.UserID).
					Warn("dashboard write failed")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Hub fans order events out to connected staff dashboards.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	seen    *SeenIDs
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		seen:    NewSeenIDs(seenCap),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	logrus.WithField("user", c.UserID).Info("dashboard connected")
}

// Unregister removes the client and closes its send channel, which
// stops the write pump. Safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, registered := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if registered {
		close(c.send)
	}
}

// OrderCreated announces a new order exactly once per remembered id.
func (h *Hub) OrderCreated(orderID string) {
	if h.seen.Remember(orderID) {
		return
	}
	h.broadcast(Event{Kind: EventOrderCreated, OrderID: orderID})
}

// OrderUpdated announces a status change; updates are not deduped,
// every transition matters to the dashboard.
func (h *Hub) OrderUpdated(orderID string) {
	h.broadcast(Event{Kind: EventOrderUpdated, OrderID: orderID})
}

// broadcast queues the event on every client without ever touching a
// connection itself. A full queue drops the event rather than block
// the caller.
func (h *Hub) broadcast(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			logrus.WithField("user", c.UserID).
				Warn("dashboard send queue full, event dropped")
		}
	}
}
