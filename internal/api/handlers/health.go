package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/creator_toolkit/internal/database"
)

const (
	dependencyUp       = "up"
	dependencyDown     = "down"
	dependencyDisabled = "disabled"
)

// HealthHandler reports the state of the optional backing stores
type HealthHandler struct {
	DB    *database.DatabaseClient
	Redis *database.RedisClient
}

// NewHealthHandler creates a new health handler. Either client may be nil.
func NewHealthHandler(db *database.DatabaseClient, redisClient *database.RedisClient) *HealthHandler {
	return &HealthHandler{DB: db, Redis: redisClient}
}

// @Summary Health check
// @Description Reports "ok" when every configured store answers, "degraded" otherwise
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	postgres := dependencyDisabled
	if h.DB != nil {
		postgres = dependencyUp
		if err := h.DB.Ping(); err != nil {
			postgres = dependencyDown
		}
	}

	redisStatus := dependencyDisabled
	if h.Redis != nil {
		redisStatus = dependencyUp
		if err := h.Redis.Ping(ctx); err != nil {
			redisStatus = dependencyDown
		}
	}

	status, code := "ok", fiber.StatusOK
	if postgres == dependencyDown || redisStatus == dependencyDown {
		status, code = "degraded", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"postgres": postgres,
		"redis":    redisStatus,
	})
}
