package middleware

import (
	"github.com/gofiber/fiber/v2"

	"memeshare/internal/authctx"
)

// RequireAuth rejects anonymous requests with 401. Mounted on the mutating
// routes only; feed reads stay open.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.UserFrom(c); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
