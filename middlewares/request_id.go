package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID tags every request with a correlation id, honoring one supplied
// by the caller. The id is echoed in the response headers and available to
// handlers via Locals.
func RequestID(c *fiber.Ctx) error {
	id := c.Get(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}

	c.Locals("requestId", id)
	c.Set(HeaderRequestID, id)

	return c.Next()
}
