package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/creator_toolkit/internal/api/middleware"
	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/generator"
)

const sessionHistoryLimit = 20

// OptionsResponse lists the choices accepted by the generators
type OptionsResponse struct {
	Categories    []generator.Option `json:"categories"`
	Tones         []generator.Option `json:"tones"`
	CallsToAction []generator.Option `json:"calls_to_action"`
}

// @Summary List generator options
// @Description Category, tone and call-to-action values with display labels
// @Tags generators
// @Produce json
// @Success 200 {object} handlers.SuccessResponse{data=handlers.OptionsResponse}
// @Router /options [get]
func (h *GeneratorHandler) GetOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": OptionsResponse{
			Categories:    generator.CategoryOptions,
			Tones:         generator.ToneOptions,
			CallsToAction: generator.CTAOptions,
		},
	})
}

// @Summary Usage statistics
// @Description Generation counters per generator for today and all time
// @Tags stats
// @Produce json
// @Success 200 {object} handlers.SuccessResponse{data=usage.Stats}
// @Failure 503 {object} handlers.ErrorResponse "Counter store unavailable"
// @Router /stats [get]
func (h *GeneratorHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.Usage.Stats(c.UserContext())
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Failed to read usage stats", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "Usage statistics unavailable",
		})
	}

	data := fiber.Map{"usage": stats}
	if h.Events != nil {
		counts, err := h.Events.CountsByKindSince(time.Now().Add(-24 * time.Hour))
		if err != nil {
			logger.Error("Failed to count generation events", "error", err)
		} else {
			data["events_last_24h"] = counts
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// @Summary Session status
// @Description Current state of every generator for a session, plus recent events when the event log is enabled
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid session ID"
// @Router /sessions/{id}/status [get]
func (h *GeneratorHandler) GetSessionStatus(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if sessionID == "" || len(sessionID) > middleware.MaxSessionIDLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid session ID",
		})
	}

	data := fiber.Map{
		"session_id": sessionID,
		"generators": h.Sessions.Snapshot(sessionID),
	}

	if h.Events != nil {
		history, err := h.Events.FindBySession(sessionID, sessionHistoryLimit)
		if err != nil {
			logger.Error("Failed to load session history", "session_id", sessionID, "error", err)
		} else {
			data["history"] = history
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
