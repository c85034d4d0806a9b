// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status, duration and
// the browser context and gate outcome when known.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		fields := []interface{}{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", reqID,
		}
		if id := ContextID(c); id != "" {
			fields = append(fields, "context_id", id)
		}
		if d, ok := c.Locals(decisionKey).(string); ok {
			fields = append(fields, "gate", d)
		}
		if err != nil {
			fields = append(fields, "error", err.Error())
		}
		log.Infow("http", fields...)
		return err
	}
}
