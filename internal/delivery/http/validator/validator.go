// Package validator wires go-playground/validator into echo's Validator hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "stepwise/internal/domain/errors"
)

// Validator adapts a validator.Validate instance to echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a Validator with struct-tag validation enabled.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks struct tags and maps any failure to the application's
// validation error so the HTTP error handler renders a 400 detail body.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
