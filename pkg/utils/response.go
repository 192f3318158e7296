package utils

import (
	"github.com/gofiber/fiber/v2"

	"taskdesk/pkg/apperr"
)

// ErrorBody is the uniform failure shape. Every failure path, whatever its
// kind, serializes to {message, errors?}; Detail only appears on internal
// errors in development mode.
type ErrorBody struct {
	Message string             `json:"message"`
	Errors  []apperr.Violation `json:"errors,omitempty"`
	Detail  string             `json:"detail,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, body ErrorBody) error {
	return c.Status(statusCode).JSON(body)
}
