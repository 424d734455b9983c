package client

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fmpdata/fmpdata-go/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateConfig checks a Config against its struct tags and converts
// violations into a ConfigError naming the offending fields.
func validateConfig(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewConfigError("invalid configuration")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatConfigError(e))
	}
	return errors.NewConfigError(strings.Join(messages, "; "))
}

// formatConfigError creates a human-readable message for one violation.
func formatConfigError(e validator.FieldError) string {
	field := toSnakeCase(e.Field())
	if e.Field() == "APIKey" && e.Tag() == "required" {
		return "api_key is required: set FMP_API_KEY or Config.APIKey"
	}
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " is invalid"
	}
}

// toSnakeCase converts a field name to snake_case, keeping acronym runs
// together (BaseURL -> base_url, APIKey -> api_key).
func toSnakeCase(s string) string {
	runes := []rune(s)
	var result strings.Builder
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (isLowerRune(runes[i-1]) || (i+1 < len(runes) && isLowerRune(runes[i+1]))) {
				result.WriteRune('_')
			}
			r += 32 // lowercase
		}
		result.WriteRune(r)
	}
	return result.String()
}

func isLowerRune(r rune) bool {
	return r >= 'a' && r <= 'z'
}
