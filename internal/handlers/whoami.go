package handlers

import (
	"github.com/gofiber/fiber/v2"

	"memeshare/internal/authctx"
)

// Whoami echoes the verified user snapshot, or null for anonymous requests.
func Whoami(c *fiber.Ctx) error {
	if user, ok := authctx.UserFrom(c); ok {
		return c.JSON(fiber.Map{"user": user})
	}
	return c.JSON(fiber.Map{"user": nil})
}
