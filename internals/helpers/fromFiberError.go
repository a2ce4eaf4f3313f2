package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"exeat_backend/internals/configs"
	"exeat_backend/internals/helpers/apperror"
)

// StatusFor maps the error taxonomy onto HTTP status codes.
// Conflicts are reported as 400 to stay compatible with existing clients.
func StatusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindConflict, apperror.KindBlackoutConflict:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindAuthorization:
		return fiber.StatusForbidden
	case apperror.KindUnauthenticated:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// FromError renders any service error in the standard envelope.
// Unclassified errors are logged and replaced by a generic message.
func FromError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		configs.Log().Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Any("request_id", c.Locals("reqid")),
			zap.Error(err),
		)
		return JsonError(c, status, "Server error")
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	var ae *apperror.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperror.KindBlackoutConflict:
			return JsonErrorWithCode(c, status, "BLACKOUT_CONFLICT", ae.Message)
		case apperror.KindConflict:
			return JsonErrorWithCode(c, status, "CONFLICT", ae.Message)
		}
		return JsonError(c, status, ae.Message)
	}
	return JsonError(c, status, err.Error())
}

// FiberErrorHandler is installed as fiber.Config.ErrorHandler.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}
