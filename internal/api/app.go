package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/creator_toolkit/internal/config"
)

// NewApp creates the Fiber app. Strings read from a request must stay valid
// after it ends: session IDs are kept as registry and limiter keys.
func NewApp(cfg *config.Config) *fiber.App {
	return fiber.New(fiber.Config{
		Immutable:             true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})
}
