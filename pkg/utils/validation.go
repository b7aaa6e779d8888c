package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct validates a struct based on its validation tags
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ViolatedFields returns the lowercased names of the fields that failed
// validation, or nil when the error carries no field information.
func ViolatedFields(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, lowerFirst(e.Field()))
	}
	return fields
}

// CheckStruct validates and returns both the error and the violated fields
func CheckStruct(s interface{}) ([]string, error) {
	if err := validate.Struct(s); err != nil {
		return ViolatedFields(err), formatValidationError(err)
	}
	return nil, nil
}

// formatValidationError formats validation errors into readable messages
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, formatFieldError(e))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := lowerFirst(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must match the %s date format", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
