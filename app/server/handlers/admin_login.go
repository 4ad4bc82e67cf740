package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"mc-command-center/app/server/auth"
	"mc-command-center/app/server/models"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		a.m.LoginAttempts.WithLabelValues(auth.Reason(err)).Inc()
		return a.er(c, http.StatusBadRequest, "Email and password required")
	}

	token, user, err := a.auth.Login(rctx, req.Email, req.Password)
	a.m.LoginAttempts.WithLabelValues(auth.Reason(err)).Inc()
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) && err != auth.ErrInvalidCredentials {
			// 被包装过说明摘要本身有问题（格式未知等），需要留痕
			a.l.Warn("login rejected", zap.Error(err))
		}
		return a.fail(c, err)
	}

	a.l.Info("user logged in", zap.Uint("id", user.ID))

	return c.JSON(http.StatusOK, &LoginResponse{
		Token: token,
		User:  user,
	})
}
