package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"memeshare/internal/cursor"
	"memeshare/internal/feedsync"
)

func listError(c *fiber.Ctx, err error) error {
	if errors.Is(err, cursor.ErrInvalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// mutationError maps the feedsync taxonomy onto HTTP statuses. A failed
// remote mutation is the store's fault, not the client's, hence 502.
func mutationError(c *fiber.Ctx, err error) error {
	var remote *feedsync.RemoteMutationError
	switch {
	case errors.Is(err, feedsync.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, feedsync.ErrEmptyInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, feedsync.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, feedsync.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, feedsync.ErrMalformedRecord):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &remote):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
