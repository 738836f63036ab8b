package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/services"
)

const userIDKey = "userID"

// RequireAuth validates the bearer token and stores the caller's user id in
// the request locals. Requests without a valid identity never reach the
// analysis pipeline.
func RequireAuth(tokens services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing Authorization header",
			})
		}

		tokenStr := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}

		userID, err := tokens.Parse(tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}
