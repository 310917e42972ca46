package response

import (
	"errors"

	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the body shape of every API response.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func New(statusCode int, data interface{}, message string) Envelope {
	return Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// JSON writes an enveloped success response.
func JSON(c *fiber.Ctx, statusCode int, data interface{}, message string) error {
	return c.Status(statusCode).JSON(New(statusCode, data, message))
}

// Error maps a service error to an HTTP status and writes the envelope.
// Unrecognized errors surface as 500 with an opaque message so upstream
// failure details never reach the client.
func Error(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return c.Status(status).JSON(New(status, nil, message))
}

func statusFor(err error) int {
	switch {
	case autherror.IsValidation(err):
		return fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrUnauthenticated),
		errors.Is(err, autherror.ErrTokenMalformed),
		errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenUnknown),
		errors.Is(err, autherror.ErrInvalidToken),
		errors.Is(err, autherror.ErrTokenReuseDetected):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, autherror.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, autherror.ErrUserAlreadyExists),
		errors.Is(err, autherror.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
