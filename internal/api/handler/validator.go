package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/eduplay/platform-api/internal/pkg/validation"
)

const defaultValidationMessage = "invalid request payload"

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validation.New()}
}

// Validate satisfies the echo.Validator interface. Request types may provide
// the top-level message of the resulting validation error.
func (ev *echoValidator) Validate(i any) error {
	msg := defaultValidationMessage
	if m, ok := i.(interface{ validationMessage() string }); ok {
		msg = m.validationMessage()
	}
	return validation.Struct(ev.v, i, msg)
}
