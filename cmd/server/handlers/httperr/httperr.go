package httperr

import (
	"github.com/gofiber/fiber/v2"
)

// E represents an HTTP error carried as the uniform failure envelope.
// Success is always false; it is serialized explicitly so every error body
// is {"success":false,"message":...}.
type E struct {
	Status  int    `json:"-" example:"400"`
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Bad Request"`
}

// Error implements the error interface
func (e E) Error() string {
	return e.Message
}

// JSON returns the error as JSON response
func (e E) JSON(c *fiber.Ctx) error {
	return c.Status(e.Status).JSON(e)
}

// New creates a new HTTP error with the given status code and message
func New(status int, message string) E {
	return E{Status: status, Message: message}
}

// Fail returns the error for Fiber's global error handler to process
func Fail(err E) error {
	return err
}

// Pre-defined HTTP errors
var (
	ErrBadRequest      = E{Status: 400, Message: "bad request"}
	ErrUnauthorized    = E{Status: 401, Message: "unauthorized access"}
	ErrForbidden       = E{Status: 403, Message: "forbidden access"}
	ErrTooManyRequests = E{Status: 429, Message: "too many requests"}
	ErrInternal        = E{Status: 500, Message: "internal server error"}
)

// Handler is the global error handler for Fiber
func Handler(c *fiber.Ctx, err error) error {
	if e, ok := err.(E); ok {
		return e.JSON(c)
	}

	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(E{
			Status:  e.Code,
			Message: e.Message,
		})
	}

	return ErrInternal.JSON(c)
}
