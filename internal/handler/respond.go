package handler

import (
	"errors"

	"go-inventory-orders/internal/apperr"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// respondError maps the application error taxonomy onto HTTP statuses:
// NotFound 404, InvalidArgument/InsufficientStock/DuplicateKey 400,
// ConcurrencyConflict 409, everything else 500 with a generic body.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidArgument),
		errors.Is(err, apperr.ErrInsufficientStock),
		errors.Is(err, apperr.ErrDuplicateKey):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrConcurrencyConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Concurrent update error. Please retry the transaction.",
		})
	default:
		// Full detail goes to the log, the caller only sees a generic message.
		log.WithError(err).Error("unexpected error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
}
