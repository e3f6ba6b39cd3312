package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	// SessionIDHeader identifies the browser tab or client issuing requests
	SessionIDHeader = "X-Session-ID"
	// SessionIDKey is the Locals key for the session ID
	SessionIDKey = "sessionID"
	// MaxSessionIDLength matches the generation_events.session_id column
	MaxSessionIDLength = 100
)

// Session resolves the caller's session. The X-Session-ID header wins;
// without it the client IP stands in so every caller still gets one
// in-flight slot per generator.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(SessionIDHeader)
		if len(sessionID) > MaxSessionIDLength {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Session ID is too long",
			})
		}
		if sessionID == "" {
			sessionID = c.IP()
		}
		// the ID is kept as a map key after the request buffer is reused
		sessionID = utils.CopyString(sessionID)

		c.Locals(SessionIDKey, sessionID)
		c.Set(SessionIDHeader, sessionID)

		return c.Next()
	}
}

// GetSessionID returns the session ID stored by Session, falling back to
// the client IP when the middleware did not run.
func GetSessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionIDKey).(string); ok && id != "" {
		return id
	}
	return c.IP()
}
