package handlers

import (
	"context"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"mc-command-center/app/server/auth"
	"mc-command-center/app/server/metrics"
	"mc-command-center/app/server/models"
)

type UserLister interface {
	List(ctx context.Context) ([]models.PublicUser, error)
}

type CommandTemplateStore interface {
	Create(ctx context.Context, name string, command string, createdBy *uint) (uint, error)
	List(ctx context.Context) ([]models.CommandTemplateView, error)
}

type App struct {
	l         *zap.Logger          // 日志
	auth      *auth.Authenticator  // 登录与建号
	guard     *auth.Guard          // 令牌校验
	users     UserLister           // 用户列表
	templates CommandTemplateStore // 指令模板
	rdb       *redis.Client        // Redis ，可以为 nil （不使用缓存）
	m         *metrics.Metrics     // 指标
}

func NewApp(
	l *zap.Logger,
	authenticator *auth.Authenticator,
	guard *auth.Guard,
	users UserLister,
	templates CommandTemplateStore,
	rdb *redis.Client,
	m *metrics.Metrics,
) *App {
	return &App{
		l:         l,
		auth:      authenticator,
		guard:     guard,
		users:     users,
		templates: templates,
		rdb:       rdb,
		m:         m,
	}
}
