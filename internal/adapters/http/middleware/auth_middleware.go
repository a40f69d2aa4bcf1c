package middleware

import (
	"strings"

	"fleetease/internal/config"
	"fleetease/internal/pkg/jwt"
	"fleetease/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware. Every route except login
// sits behind it; the mobile app reacts to the 401 by dropping its stored token.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Not authenticated")
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Token expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		c.Locals("userID", claims.Subject)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// CurrentUserID returns the authenticated staff user id set by AuthMiddleware
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
