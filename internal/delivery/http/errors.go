package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/internal/media"
)

// statusFor maps an error to a response code and client-facing message
func statusFor(err error) (int, string) {
	var fe *fiber.Error
	var authErr *domain.AuthError
	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.Is(err, domain.ErrAuthRequired):
		return fiber.StatusUnauthorized, "Authentication required"
	case errors.As(err, &authErr):
		return fiber.StatusUnauthorized, authErr.Error()
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, media.ErrUnsupportedType):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	}
	return fiber.StatusInternalServerError, "Internal Server Error"
}

// ErrorHandler renders errors as {error, message}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
