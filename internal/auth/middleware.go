package auth

import (
	"strings"

	"github.com/Natemerkl/yegna-inventory-hub/internal/config"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxProfileIDKey = "profile_id"
	CtxUserNameKey  = "user_name"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing Authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
		}

		claims, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(CtxProfileIDKey, claims.ProfileID)
		c.Locals(CtxUserNameKey, claims.FullName)

		return c.Next()
	}
}

// ProfileID returns the authenticated profile id placed in Locals by
// JWTMiddleware. Handlers pass it explicitly into every query and service
// call; nothing below the handler layer reads ambient identity.
func ProfileID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(CtxProfileIDKey).(string)
	if !ok || id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing profile identity")
	}
	return id, nil
}

func UserName(c *fiber.Ctx) string {
	name, _ := c.Locals(CtxUserNameKey).(string)
	return name
}
