package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/creator_toolkit/internal/api/middleware"
	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
)

// ErrorHandler renders errors returned by handlers in the JSON envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Unhandled error", "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
