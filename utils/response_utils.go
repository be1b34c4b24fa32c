package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// FormatValidationErrors formats validation errors from validator/v10.
func FormatValidationErrors(err error) []string {
	var errs []string
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			errs = append(errs, err.Error())
		}
		return errs
	}
	for _, fe := range verrs {
		element := fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			element = fmt.Sprintf("%s (value: %s)", element, fe.Param())
		}
		errs = append(errs, element)
	}
	return errs
}

// SanitizeInput trims surrounding whitespace.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
