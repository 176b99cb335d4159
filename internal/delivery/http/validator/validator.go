// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "postboard/internal/domain/errors"
)

type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New builds the request validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct tag validation and maps failures onto the domain
// validation error so the error handler renders a client error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "request validation failed")
	}

	return nil
}
