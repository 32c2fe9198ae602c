package websocket

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/spinr-app/dispatch/internal/pkg/logger"
	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// Client is one authenticated realtime connection
type Client struct {
	Key    string
	UserID uuid.UUID
	Role   string

	conn *websocket.Conn
	// serializes writes; gorilla allows at most one concurrent writer
	writeMu sync.Mutex
}

// WriteJSON sends a single frame to the client
func (c *Client) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// ReadJSON reads the next frame from the client
func (c *Client) ReadJSON(v interface{}) error {
	return c.conn.ReadJSON(v)
}

// Hub is the registry of authenticated realtime connections, keyed by
// role_userID. It is constructed once at process start and injected into
// the dispatch core. Delivery is fire-and-forget: a missing key drops the
// message silently.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*Client
	locations map[uuid.UUID]models.DriverLocation
}

// NewHub creates an empty connection registry
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		locations: make(map[uuid.UUID]models.DriverLocation),
	}
}

// Key computes the server-side registry key for a role and user
func Key(role string, userID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", role, userID)
}

// Register adds an authenticated connection under its server-computed key,
// replacing any stale connection for the same key
func (h *Hub) Register(role string, userID uuid.UUID, conn *websocket.Conn) *Client {
	client := &Client{
		Key:    Key(role, userID),
		UserID: userID,
		Role:   role,
		conn:   conn,
	}

	h.mu.Lock()
	if old, ok := h.clients[client.Key]; ok {
		_ = old.conn.Close()
	}
	h.clients[client.Key] = client
	h.mu.Unlock()

	logger.Info("realtime client connected", logger.String("key", client.Key))
	return client
}

// Unregister removes a connection; a newer connection under the same key
// is left in place
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if current, ok := h.clients[client.Key]; ok && current == client {
		delete(h.clients, client.Key)
	}
	h.mu.Unlock()

	logger.Info("realtime client disconnected", logger.String("key", client.Key))
}

// IsConnected reports whether a live connection exists for the key
func (h *Hub) IsConnected(key string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[key]
	return ok
}

// Send delivers a message to the connection registered under key.
// It returns false when no live connection exists; the message is dropped.
func (h *Hub) Send(key string, v interface{}) bool {
	h.mu.RLock()
	client, ok := h.clients[key]
	h.mu.RUnlock()

	if !ok {
		return false
	}

	if err := client.WriteJSON(v); err != nil {
		logger.Warn("failed to write realtime message",
			logger.String("key", key),
			logger.Err(err))
		return false
	}
	return true
}

// UpdateDriverLocation records a driver's last known position in the
// in-memory cache
func (h *Hub) UpdateDriverLocation(driverID uuid.UUID, lat, lng float64) {
	h.mu.Lock()
	h.locations[driverID] = models.DriverLocation{
		DriverID:  driverID,
		Lat:       lat,
		Lng:       lng,
		UpdatedAt: time.Now().UTC(),
	}
	h.mu.Unlock()
}

// DriverLocation returns a driver's last known position, if seen
func (h *Hub) DriverLocation(driverID uuid.UUID) (models.DriverLocation, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	loc, ok := h.locations[driverID]
	return loc, ok
}
