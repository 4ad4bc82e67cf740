package inits

import (
	"context"
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"mc-command-center/app/server/store"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func DB(ctx context.Context, conn string, debugMode bool, l *zap.Logger) (db *gorm.DB, err error) {
	dialector, isSQLite, err := dialectorFor(conn)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		TranslateError: true, // 唯一约束冲突转换为 gorm.ErrDuplicatedKey
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if debugMode {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	// 打开连接，数据库还没就绪时按指数退避重试
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	if err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var openErr error
		if db, openErr = gorm.Open(dialector, gormCfg); openErr != nil {
			l.Warn("database not ready, retrying", zap.Error(openErr))
			return retry.RetryableError(openErr)
		}

		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}
		if openErr = sqlDB.PingContext(ctx); openErr != nil {
			l.Warn("database ping failed, retrying", zap.Error(openErr))
			return retry.RetryableError(openErr)
		}

		// SQLite 同一时间只允许一个写入者
		if isSQLite {
			sqlDB.SetMaxOpenConns(1)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = store.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func dialectorFor(conn string) (gorm.Dialector, bool, error) {
	if strings.HasPrefix(conn, "postgres://") || strings.HasPrefix(conn, "postgresql://") {
		return postgres.Open(conn), false, nil
	}

	// 其余都当作 SQLite 文件路径
	path := strings.TrimPrefix(conn, "sqlite://")
	if path == "" {
		return nil, false, fmt.Errorf("empty sqlite path")
	}

	file, _, _ := strings.Cut(path, "?")
	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return sqlite.Open(path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"), true, nil
}
