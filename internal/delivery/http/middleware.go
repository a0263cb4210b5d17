package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/outfique/backend/internal/metrics"
)

// RequestMetrics counts requests by route template and final status
func RequestMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// the error handler runs after this middleware returns
			status, _ = statusFor(err)
		}

		metrics.HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}
