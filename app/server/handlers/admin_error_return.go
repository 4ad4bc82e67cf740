package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"mc-command-center/app/server/auth"
	"net/http"
)

type ErrorMessage struct {
	Error string `json:"error"`
}

func (a *App) er(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, &ErrorMessage{
		Error: message,
	})
}

// fail 把错误映射为状态码，响应里不带任何内部错误细节
func (a *App) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrValidation):
		return a.er(c, http.StatusBadRequest, "Missing fields")
	case errors.Is(err, auth.ErrDuplicateEmail):
		return a.er(c, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return a.er(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, auth.ErrNoToken):
		return a.er(c, http.StatusUnauthorized, "No token")
	case errors.Is(err, auth.ErrInvalidToken):
		return a.er(c, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, auth.ErrInvalidUser):
		return a.er(c, http.StatusUnauthorized, "Invalid user")
	case errors.Is(err, auth.ErrForbidden):
		return a.er(c, http.StatusForbidden, "Forbidden")
	default:
		a.l.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("reason", auth.Reason(err)),
			zap.Error(err),
		)
		return a.er(c, http.StatusInternalServerError, "Server error")
	}
}
