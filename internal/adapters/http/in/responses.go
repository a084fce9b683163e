package in

import (
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/gofiber/fiber/v2"
)

// errorEnvelope is the mandatory ERR-1 JSON body every error response
// carries: {"type", "message", "timestamp"}.
type errorEnvelope struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// WithError maps any error into the ERR-1 envelope and the HTTP status
// documented for its AppError kind. This is the sole site in the HTTP
// adapter that translates AppError into a protocol response.
func WithError(c *fiber.Ctx, err error) error {
	ae := apperr.As(err)

	return c.Status(apperr.HTTPStatus(ae.Kind)).JSON(errorEnvelope{
		Type:      string(ae.Kind),
		Message:   ae.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// OK writes a 200 response with the given payload.
func OK(c *fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

// Created writes a 201 response with the given payload.
func Created(c *fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusCreated).JSON(payload)
}

// NoContent writes a 204 response with an empty body.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
