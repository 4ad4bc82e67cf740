package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"mc-command-center/app/server/apidocs"
	"mc-command-center/app/server/auth"
	"mc-command-center/app/server/handlers"
	"mc-command-center/app/server/inits"
	"mc-command-center/app/server/jwt"
	"mc-command-center/app/server/metrics"
	"mc-command-center/app/server/store"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	l.Debug("logger initialized")
	if inits.UsesDevSecret(cfg) {
		l.Warn("JWT_SECRET not set, using the development secret")
	}

	// 初始化数据库连接
	db, err := inits.DB(ctx, cfg.System.DBConnectionString, !cfg.System.IsProd, l)
	if err != nil {
		l.Error("error initializing DB connection", zap.Error(err))
		return err
	}

	// 初始化 redis 连接（可选）
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Error("error initializing Redis connection", zap.Error(err))
		return err
	}
	if rdb == nil {
		l.Info("REDIS_CONN not set, command template cache disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Error("error initializing JWT", zap.Error(err))
		return err
	}

	// 组装认证组件
	users := store.NewUsers(db)
	templates := store.NewCommandTemplates(db)
	authenticator, err := auth.NewAuthenticator(users, j, auth.NewPasswordHasher(nil))
	if err != nil {
		l.Error("error initializing authenticator", zap.Error(err))
		return err
	}
	guard := auth.NewGuard(users, j)

	// 初始化启动数据
	if err = inits.InitData(ctx, cfg, users, templates, authenticator, l); err != nil {
		l.Error("error initializing data", zap.Error(err))
		return err
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, authenticator, guard, users, templates, rdb, metrics.New())

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("requestID", v.RequestID),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(corsConfig(cfg.System.CORSOrigins)))

	// 绑定 echo 服务
	handlerApp.Register(e)

	// 添加 API 文档
	if !cfg.System.IsProd {
		if spec, err := apidocs.Spec(ctx); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", spec))
		}
	}

	// 启动 echo 服务
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	l.Info("shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func corsConfig(origins []string) middleware.CORSConfig {
	cfg := middleware.CORSConfig{
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}

	if len(origins) == 0 {
		// 未配置时回显请求来源
		cfg.AllowOriginFunc = func(origin string) (bool, error) {
			return true, nil
		}
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}
