package authctx

import (
	"github.com/gofiber/fiber/v2"
)

// User is the signed-in user snapshot taken from the verified token. It is
// passed explicitly into every mutating operation instead of being read from
// an ambient global, so the operations stay pure functions of (state, input).
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

const localsKey = "auth_user"

// Put stores the snapshot on the request. Called by the JWT middleware only.
func Put(c *fiber.Ctx, u User) {
	c.Locals(localsKey, u)
}

// UserFrom returns the snapshot for this request. ok is false for anonymous
// requests; callers treat that as Unauthenticated for every mutating call.
func UserFrom(c *fiber.Ctx) (User, bool) {
	if v := c.Locals(localsKey); v != nil {
		if u, ok := v.(User); ok && u.ID != "" {
			return u, true
		}
	}
	return User{}, false
}
