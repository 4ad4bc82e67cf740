package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"mc-command-center/app/server/auth"
	"mc-command-center/app/server/models"
)

const ctxKeyUser = "user"

// RequireUser 校验 bearer 令牌，并把当前（从存储中重新读取的）用户放入 context
func (a *App) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := a.guard.Verify(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			reason := auth.Reason(err)
			a.m.GuardRejects.WithLabelValues(reason).Inc()
			a.l.Debug("access guard rejected request",
				zap.String("path", c.Path()),
				zap.String("reason", reason),
				zap.Error(err),
			)
			return a.fail(c, err)
		}

		c.Set(ctxKeyUser, user)
		return next(c)
	}
}

// RequireAdmin 必须挂在 RequireUser 之后，看的是当前记录的 is_admin
func (a *App) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		if err := auth.RequireAdmin(user); err != nil {
			a.m.GuardRejects.WithLabelValues(auth.Reason(err)).Inc()
			if user != nil {
				a.l.Info("non-admin user denied", zap.Uint("id", user.ID), zap.String("path", c.Path()))
			}
			return a.fail(c, err)
		}

		return next(c)
	}
}

func currentUser(c echo.Context) *models.PublicUser {
	user, _ := c.Get(ctxKeyUser).(*models.PublicUser)
	return user
}
