// Package validator plugs go-playground/validator into Echo's request binding.
package validator

import (
	"strings"

	domainerrors "atlas/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator adapts a playground validator to echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the HTTP server.
func New() *echoValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	return &echoValidator{validate: validate}
}

// Validate checks the bound request struct and converts violations into a
// 422 response carrying a field name to messages map.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make(map[string][]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field())
		fieldErrors[field] = append(fieldErrors[field], describe(fieldErr))
	}

	return domainerrors.NewValidationError(fieldErrors)
}

// describe renders a single violation as a human readable message.
func describe(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed the " + fieldErr.Tag() + " rule"
	}
}
