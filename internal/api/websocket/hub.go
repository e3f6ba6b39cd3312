package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/session"
)

const sendBufferSize = 64

// Client represents a connected WebSocket client
type Client struct {
	conn      *websocket.Conn
	sessionID string
	send      chan []byte
}

// Hub fans session events out to the WebSocket clients watching that session
type Hub struct {
	// Registered clients by session ID
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a new websocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run handles registrations until Stop is called
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.sessionID]; !ok {
				h.clients[client.sessionID] = make(map[*Client]bool)
			}
			h.clients[client.sessionID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.sessionID]; ok && clients[client] {
				delete(clients, client)
				close(client.send)
				if len(clients) == 0 {
					delete(h.clients, client.sessionID)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for _, clients := range h.clients {
				for client := range clients {
					close(client.send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Stop ends Run and closes every client
func (h *Hub) Stop() {
	close(h.done)
}

// Register registers a new client connection. It returns false once the
// hub is stopped; the caller then owns client.send.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client connection
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of clients watching a session
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// Publish sends an event to all clients subscribed to a session
func (h *Hub) Publish(sessionID string, event session.Event) {
	messageJSON, err := json.Marshal(event)
	if err != nil {
		logger.Error("Error marshalling WebSocket message", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[sessionID] {
		select {
		case client.send <- messageJSON:
		default:
			// Send buffer full, drop the slow client
			go h.Unregister(client)
		}
	}
}

// HandleConnection serves one WebSocket connection until it closes
func (h *Hub) HandleConnection(conn *websocket.Conn, sessionID string, states []session.State) {
	client := &Client{
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan []byte, sendBufferSize),
	}

	initialMsg, _ := json.Marshal(map[string]interface{}{
		"type":       "connected",
		"session_id": sessionID,
		"timestamp":  time.Now(),
		"data":       states,
	})
	client.send <- initialMsg

	if !h.Register(client) {
		// hub stopped: flush the greeting, send a close frame and hang up
		close(client.send)
		client.writePump()
		return
	}

	go client.writePump()
	client.readPump(h)
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump drains the connection until the client goes away. Incoming
// messages are ignored.
func (c *Client) readPump(h *Hub) {
	defer h.Unregister(c)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket error", "session_id", c.sessionID, "error", err)
			}
			return
		}
	}
}
