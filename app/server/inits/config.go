package inits

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"mc-command-center/app/server/config"
	"os"
	"strings"
)

const devSignatureSecretKey = "dev_secret_change_me"

// Config 从环境变量读取配置，当前目录下有 .env 时先加载它（不覆盖已有的环境变量）
func Config() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":5000" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		cfg.System.DBConnectionString = "data/app.db"
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	cfg.System.RedisConnectionString = os.Getenv("REDIS_CONN")

	if origins, exist := os.LookupEnv("CORS_ORIGINS"); exist && origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.System.CORSOrigins = append(cfg.System.CORSOrigins, origin)
			}
		}
	}

	if sigsk, exist := os.LookupEnv("JWT_SECRET"); !exist || sigsk == "" {
		if cfg.System.IsProd {
			return nil, fmt.Errorf("JWT_SECRET environment variable not set")
		}
		cfg.Security.SignatureSecretKey = devSignatureSecretKey
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	if username, exist := os.LookupEnv("ADMIN_USERNAME"); !exist || username == "" {
		cfg.Admin.Username = "admin"
	} else {
		cfg.Admin.Username = username
	}

	return &cfg, nil
}

// UsesDevSecret 开发环境下没有配置密钥时会回退到固定值，启动时需要提示
func UsesDevSecret(cfg *config.Config) bool {
	return cfg.Security.SignatureSecretKey == devSignatureSecretKey
}
