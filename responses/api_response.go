package responses

import "github.com/gofiber/fiber/v2"

// Machine-readable error codes. Error bodies carry one of these instead of
// the raw store error.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeBadRequest = "BAD_REQUEST"
	CodeStoreError = "STORE_ERROR"
)

type ApiResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Code    string     `json:"code,omitempty"`
	Result  *fiber.Map `json:"result,omitempty"`
}
