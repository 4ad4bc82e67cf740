package handlers

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"mc-command-center/app/server/auth"
)

type requestValidator struct {
	v *validator.Validate
}

func NewValidator() echo.Validator {
	return &requestValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (r *requestValidator) Validate(i interface{}) error {
	if err := r.v.Struct(i); err != nil {
		return fmt.Errorf("%w: %w", auth.ErrValidation, err)
	}

	return nil
}

// bindAndValidate 绑定请求体并校验，任何失败都归为 ErrValidation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: %w", auth.ErrValidation, err)
	}

	return c.Validate(req)
}
