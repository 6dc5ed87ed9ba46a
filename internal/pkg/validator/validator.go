// Package validator adapts go-playground/validator to echo and turns its
// errors into per-field messages keyed by JSON name.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// EchoValidator implements echo.Validator
type EchoValidator struct {
	validator *validator.Validate
}

// NewEchoValidator creates a validator suitable for echo.Echo.Validator
func NewEchoValidator() *EchoValidator {
	return &EchoValidator{validator: GetValidator()}
}

// Validate validates a struct using its validate tags
func (v *EchoValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// FieldErrors converts validation errors to a map of field name to message.
// Returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "latitude":
		return "Ensure this value is between -90 and 90."
	case "longitude":
		return "Ensure this value is between -180 and 180."
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is at least %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this value is at most %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}
