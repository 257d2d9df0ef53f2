package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const localsUserKey = "auth_user_id"

// RequireAuth resolves the current user from the session token, looked up
// in the "token" cookie first (browser clients) then the Authorization
// bearer header (tooling). Requests without a valid token never reach the
// handler.
func RequireAuth(tm *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			header := c.Get(fiber.HeaderAuthorization)
			token = strings.TrimPrefix(header, "Bearer ")
		}
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		claims, err := tm.Validate(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(localsUserKey, claims.UserID)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user id stored by RequireAuth.
func CurrentUser(c *fiber.Ctx) string {
	if id, ok := c.Locals(localsUserKey).(string); ok {
		return id
	}
	return ""
}
