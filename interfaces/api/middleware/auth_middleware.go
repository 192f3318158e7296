package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskdesk/pkg/apperr"
	"taskdesk/pkg/logger"
	"taskdesk/pkg/utils"
)

// Protected guards a route behind bearer-token authentication. On success
// the verified identity is bound to the request; everything downstream
// scopes by that identity and nothing else.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperr.Unauthenticated("Authentication token not provided.")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return apperr.Unauthenticated("Invalid authorization header format.")
		}

		userCtx, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			if errors.Is(err, utils.ErrExpiredToken) {
				return apperr.New(apperr.KindTokenExpired, "Authentication token has expired.")
			}
			return apperr.New(apperr.KindInvalidToken, "Invalid authentication token.")
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}
