package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"mc-command-center/app/server/auth"
	"mc-command-center/app/server/models"
	"net/http"
)

type UserCreateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsAdmin  *bool  `json:"is_admin"`
}

type CreatedResponse struct {
	OK bool `json:"ok"`
	ID uint `json:"id"`
}

type UserListResponse struct {
	Users []models.PublicUser `json:"users"`
}

type UserInfoResponse struct {
	User *models.PublicUser `json:"user"`
}

func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req UserCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		a.m.AccountsCreate.WithLabelValues(auth.Reason(err)).Inc()
		return a.fail(c, err)
	}

	isAdmin := req.IsAdmin != nil && *req.IsAdmin

	// 创建用户
	id, err := a.auth.CreateAccount(rctx, req.Email, req.Username, req.Password, isAdmin)
	a.m.AccountsCreate.WithLabelValues(auth.Reason(err)).Inc()
	if err != nil {
		return a.fail(c, err)
	}

	a.l.Info("account created",
		zap.Uint("id", id),
		zap.Bool("isAdmin", isAdmin),
		zap.Uint("by", currentUser(c).ID),
	)

	return c.JSON(http.StatusOK, &CreatedResponse{
		OK: true,
		ID: id,
	})
}

func (a *App) UserList(c echo.Context) error {
	users, err := a.users.List(c.Request().Context())
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &UserListResponse{
		Users: users,
	})
}

// UserInfoGetSelf 返回的是 Guard 在本次请求中刚从存储读取的记录
func (a *App) UserInfoGetSelf(c echo.Context) error {
	return c.JSON(http.StatusOK, &UserInfoResponse{
		User: currentUser(c),
	})
}
