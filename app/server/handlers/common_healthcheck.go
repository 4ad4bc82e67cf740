package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) HealthCheck(c echo.Context) error {
	// Redis 只是缓存，不可用时降级而不是报错
	cache := "disabled"
	if a.rdb != nil {
		if err := a.rdb.Ping(c.Request().Context()).Err(); err != nil {
			a.l.Warn("redis ping failed", zap.Error(err))
			cache = "degraded"
		} else {
			cache = "ok"
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"cache":  cache,
	})
}
