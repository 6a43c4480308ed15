// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "roster/internal/domain/errors"
)

// requestValidator implements echo.Validator over go-playground/validator.
type requestValidator struct {
	validate *playground.Validate
}

// New builds the validator used for all request DTOs.
func New() echo.Validator {
	return &requestValidator{validate: playground.New()}
}

// Validate runs struct tag validation and maps failures to the domain
// validation error so the error middleware renders a 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
