package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Identity attaches the acting user id to the request. There is no credential
// check: the id comes from configuration until a real auth layer exists.
func Identity(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
		return c.Next()
	}
}

// CurrentUserID returns the id stored by Identity.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	uid, ok := c.Locals("userID").(uint)
	return uid, ok && uid != 0
}
