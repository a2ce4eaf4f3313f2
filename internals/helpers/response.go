package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError renders validator.v10 failures as a field → message map.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	return JsonValidationError(c, FieldErrors(ve))
}

func FieldErrors(ve validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required."
		case "email":
			out[field] = "Invalid email format."
		case "min":
			out[field] = field + " must be at least " + fe.Param() + " characters long."
		case "max":
			out[field] = field + " must be at most " + fe.Param() + " characters long."
		case "oneof":
			out[field] = field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
		default:
			out[field] = "Invalid value."
		}
	}
	return out
}
