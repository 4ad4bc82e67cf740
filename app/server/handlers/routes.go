package handlers

import (
	"github.com/labstack/echo/v4"
)

func (a *App) Register(e *echo.Echo) {
	e.Validator = NewValidator()

	api := e.Group("/api")
	api.GET("/healthcheck", a.HealthCheck)

	// 公开
	api.POST("/login", a.AuthLogin)

	// 任意已登录用户
	api.GET("/profile", a.UserInfoGetSelf, a.RequireUser)
	api.GET("/command-builders", a.CommandTemplateList, a.RequireUser)

	// 仅管理员
	admin := api.Group("/admin", a.RequireUser, a.RequireAdmin)
	admin.POST("/create-account", a.UserCreate)
	admin.GET("/users", a.UserList)
	admin.POST("/command-builder", a.CommandTemplateCreate)

	e.GET("/metrics", a.m.Handler())
}
