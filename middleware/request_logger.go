package middleware

import (
	"time"

	"joyful-cargo/logger"
	"joyful-cargo/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger captures each request/response pair and hands it to the
// async logger for persistence.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:       c.Method(),
			URL:          c.OriginalURL(),
			ClientIP:     c.IP(),
			RequestBody:  string(c.Body()),
			ResponseBody: string(c.Response().Body()),
			StatusCode:   c.Response().StatusCode(),
			DurationMs:   time.Since(start).Milliseconds(),
			CreatedAt:    start,
		})

		return err
	}
}
