package inits

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"mc-command-center/app/server/auth"
	"mc-command-center/app/server/config"
	"mc-command-center/app/server/models"
	"mc-command-center/app/server/store"
)

// SeedAdmin 以邮箱为准幂等地创建管理员，已存在时返回现有记录的 id 和 false
func SeedAdmin(ctx context.Context, users *store.Users, a *auth.Authenticator, email string, username string, password string) (uint, bool, error) {
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing.ID, false, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return 0, false, fmt.Errorf("failed to find admin: %w", err)
	}

	id, err := a.CreateAccount(ctx, email, username, password, true)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create admin: %w", err)
	}

	return id, true, nil
}

// InitData 首次启动时写入初始数据
func InitData(ctx context.Context, cfg *config.Config, users *store.Users, templates *store.CommandTemplates, a *auth.Authenticator, l *zap.Logger) error {
	// 初始化用户
	if counter, err := users.Count(ctx); err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 {
		if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
			l.Warn("no users in database and ADMIN_EMAIL / ADMIN_PASSWORD not set, run seed-admin to create one")
		} else if id, _, err := SeedAdmin(ctx, users, a, cfg.Admin.Email, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			return err
		} else {
			l.Info("initial admin created", zap.Uint("id", id), zap.String("email", cfg.Admin.Email))
		}
	}

	// 初始化模板
	if counter, err := templates.Count(ctx); err != nil {
		return fmt.Errorf("failed to get command template count: %w", err)
	} else if counter == 0 {
		if err = templates.CreateBatch(ctx, defaultCommandTemplates()); err != nil {
			return fmt.Errorf("failed to create initial command templates: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}

func defaultCommandTemplates() []*models.CommandTemplate {
	return []*models.CommandTemplate{
		{
			Name:            "Give item",
			CommandTemplate: "/give {player} {item} {count}",
		},
		{
			Name:            "Teleport",
			CommandTemplate: "/tp {player} {x} {y} {z}",
		},
		{
			Name:            "Set time",
			CommandTemplate: "/time set {time}",
		},
		{
			Name:            "Weather",
			CommandTemplate: "/weather {type} {duration}",
		},
	}
}
