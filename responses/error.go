package responses

import "github.com/gofiber/fiber/v2"

// Error writes the failure envelope. The message is for humans, the code for
// machines; the underlying error never goes over the wire.
func Error(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ApiResponse{
		Status:  status,
		Message: message,
		Code:    code,
	})
}
