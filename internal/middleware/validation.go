package middleware

import (
	"umatter/internal/domain"
	"umatter/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateCategory validates the category parameter from path or query
func (vm *ValidationMiddleware) ValidateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Params("category")
		if category == "" {
			category = c.Query("category")
		}

		if errors := vm.validator.ValidateCategoryParam(category); len(errors) > 0 {
			return errors // Handled by the ErrorHandler middleware
		}

		c.Locals("validated_category", category)
		return c.Next()
	}
}

// ValidateDays validates the days query parameter with a default of 7
func (vm *ValidationMiddleware) ValidateDays() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := 7
		if daysStr := c.Query("days"); daysStr != "" {
			parsed, err := parseDays(daysStr)
			if err != nil {
				return domain.ValidationErrors{
					domain.NewInvalidFormatError("days", daysStr),
				}
			}
			days = parsed
		}

		if errors := vm.validator.ValidateDays(days); len(errors) > 0 {
			return errors
		}

		c.Locals("validated_days", days)
		return c.Next()
	}
}

// parseDays parses the days parameter, digits only
func parseDays(daysStr string) (int, error) {
	days := 0
	for _, char := range daysStr {
		if char < '0' || char > '9' {
			return 0, domain.NewValidationError("days must be a number")
		}
		days = days*10 + int(char-'0')
		if days > 1000 {
			return 0, domain.NewValidationError("days exceeds maximum value")
		}
	}
	return days, nil
}
