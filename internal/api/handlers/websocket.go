package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/chynybekuuludastan/creator_toolkit/internal/api/middleware"
	ws "github.com/chynybekuuludastan/creator_toolkit/internal/api/websocket"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/session"
)

// WebSocketHandler streams session state changes to browsers
type WebSocketHandler struct {
	Hub      *ws.Hub
	Sessions *session.Registry
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub, sessions *session.Registry) *WebSocketHandler {
	return &WebSocketHandler{Hub: hub, Sessions: sessions}
}

// Upgrade rejects plain HTTP requests on the WebSocket routes
func (h *WebSocketHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{
		"success": false,
		"error":   "WebSocket upgrade required",
	})
}

// HandleSessionWebSocket subscribes the connection to one session's events
func (h *WebSocketHandler) HandleSessionWebSocket(c *websocket.Conn) {
	sessionID := c.Params("id")
	if sessionID == "" || len(sessionID) > middleware.MaxSessionIDLength {
		msg, _ := json.Marshal(fiber.Map{
			"type":      "error",
			"timestamp": time.Now(),
			"data":      fiber.Map{"message": "Invalid session ID"},
		})
		c.WriteMessage(websocket.TextMessage, msg)
		c.Close()
		return
	}

	h.Hub.HandleConnection(c, sessionID, h.Sessions.Snapshot(sessionID))
}
