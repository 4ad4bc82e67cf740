package handlers

import (
	"encoding/json"
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"mc-command-center/app/server/constants"
	"net/http"
)

type CommandTemplateCreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Command string `json:"command" validate:"required"`
}

type CommandTemplateListResponse struct {
	List json.RawMessage `json:"list"`
}

func (a *App) CommandTemplateCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req CommandTemplateCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return a.fail(c, err)
	}

	user := currentUser(c)
	id, err := a.templates.Create(rctx, req.Name, req.Command, &user.ID)
	if err != nil {
		return a.fail(c, err)
	}

	// 列表缓存失效
	if a.rdb != nil {
		if err := a.rdb.Del(rctx, constants.CacheKeyCommandTemplateList).Err(); err != nil {
			a.l.Error("failed to invalidate command template cache", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, &CreatedResponse{
		OK: true,
		ID: id,
	})
}

func (a *App) CommandTemplateList(c echo.Context) error {
	rctx := c.Request().Context()

	// 检查是否有缓存结果
	if a.rdb != nil {
		if data, err := a.rdb.Get(rctx, constants.CacheKeyCommandTemplateList).Bytes(); err != nil {
			if !errors.Is(err, redis.Nil) {
				a.l.Error("failed to query command template cache", zap.Error(err))
			}
		} else {
			return c.JSON(http.StatusOK, &CommandTemplateListResponse{List: data})
		}
	}

	list, err := a.templates.List(rctx)
	if err != nil {
		return a.fail(c, err)
	}

	listBytes, err := json.Marshal(list)
	if err != nil {
		return a.fail(c, err)
	}

	// 加入缓存
	if a.rdb != nil {
		if err := a.rdb.Set(rctx, constants.CacheKeyCommandTemplateList, listBytes, constants.CacheExpireCommandTemplateList).Err(); err != nil {
			a.l.Error("failed to cache command template list", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, &CommandTemplateListResponse{List: listBytes})
}
