package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/somewherelostt/KaizenX/internal/config"
	"github.com/somewherelostt/KaizenX/pkg/response"
)

// UserIDKey is where RequireAuth stores the authenticated user id in locals.
const UserIDKey = "user_id"

// RequireAuth validates the Authorization bearer token and stashes the user
// id for handlers. Any parse or signature problem is a plain 401; the client
// treats it as "not authenticated" and drops its cached token.
func RequireAuth(auth *config.AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			return response.WriteError(c, fiber.StatusUnauthorized, "Not authenticated", "missing bearer token")
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(auth.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return response.WriteError(c, fiber.StatusUnauthorized, "Invalid token", "token rejected")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.WriteError(c, fiber.StatusUnauthorized, "Invalid token", "bad claims")
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			return response.WriteError(c, fiber.StatusUnauthorized, "Invalid token", "missing subject")
		}

		c.Locals(UserIDKey, sub)
		return c.Next()
	}
}

// UserID reads the authenticated user id set by RequireAuth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
