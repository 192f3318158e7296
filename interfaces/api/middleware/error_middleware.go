package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskdesk/pkg/apperr"
	"taskdesk/pkg/logger"
	"taskdesk/pkg/utils"
)

// ErrorHandler is the single place failures become HTTP responses. Every
// handler and middleware returns errors into it; kinds map to stable
// statuses and the uniform {message, errors?} body.
func ErrorHandler(developmentMode bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			// Framework-level failures: unknown route, method not allowed,
			// oversized body. Same body shape as everything else.
			return utils.ErrorResponse(c, fiberErr.Code, utils.ErrorBody{Message: fiberErr.Message})
		}

		appErr := apperr.From(err)
		status := statusOf(appErr.Kind)

		body := utils.ErrorBody{
			Message: appErr.Message,
			Errors:  appErr.Violations,
		}

		if status >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
			if developmentMode {
				if cause := errors.Unwrap(appErr); cause != nil {
					body.Detail = cause.Error()
				}
			}
		}

		return utils.ErrorResponse(c, status, body)
	}
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindBadRequest, apperr.KindForeignKey:
		return fiber.StatusBadRequest
	case apperr.KindUnauthenticated, apperr.KindTokenExpired:
		return fiber.StatusUnauthorized
	case apperr.KindInvalidToken:
		return fiber.StatusForbidden
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
