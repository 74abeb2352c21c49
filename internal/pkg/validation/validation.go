// Package validation configures go-playground/validator for request and
// use-case input structs and turns its failures into domain errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// New returns a validator that knows the "notblank" rule and reports field
// names using their json tag when one is present.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates i and, on failure, returns a domain validation error with
// msg as its message and one detail per offending field.
func Struct(v *validator.Validate, i any, msg string) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.Internal("validation failed", err)
	}

	details := make([]string, 0, len(ve))
	for _, fe := range ve {
		details = append(details, FieldError(fe))
	}
	return domain.Validation(msg, details...)
}

// FieldError converts a single validation failure into a human-readable message.
func FieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "required_without":
		return fmt.Sprintf("%s is required when %s is missing", field, lowerFirst(fe.Param()))
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
