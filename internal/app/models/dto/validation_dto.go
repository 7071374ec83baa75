package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding/validation error into an
// ErrorDetail suitable for a 400 response.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		detail := NewErrorDetail(ErrorCodeValidationFailed, formatFieldError(first))
		detail = detail.WithField(first.Field())
		if len(validationErrs) > 1 {
			messages := make([]string, 0, len(validationErrs))
			for _, fe := range validationErrs {
				messages = append(messages, formatFieldError(fe))
			}
			detail = detail.WithDetails(messages)
		}
		return detail
	}

	detail := NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format")
	return detail.WithDetails(err.Error())
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
