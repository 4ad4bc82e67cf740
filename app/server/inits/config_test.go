package inits

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"MODE", "LISTEN", "DB_CONN", "REDIS_CONN", "CORS_ORIGINS", "JWT_SECRET",
	"ADMIN_EMAIL", "ADMIN_USERNAME", "ADMIN_PASSWORD",
}

// clearEnv 清空配置相关的环境变量，测试结束后恢复
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Config()
	require.NoError(t, err)

	assert.False(t, cfg.System.IsProd)
	assert.Equal(t, ":5000", cfg.System.Listen)
	assert.Equal(t, "data/app.db", cfg.System.DBConnectionString)
	assert.Empty(t, cfg.System.RedisConnectionString)
	assert.Empty(t, cfg.System.CORSOrigins)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.True(t, UsesDevSecret(cfg))
}

func TestConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODE", "production")
	t.Setenv("LISTEN", "127.0.0.1:8080")
	t.Setenv("DB_CONN", "postgres://u:p@localhost/mcc")
	t.Setenv("REDIS_CONN", "redis://localhost:6379/0")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_EMAIL", "root@x.com")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "pw")

	cfg, err := Config()
	require.NoError(t, err)

	assert.True(t, cfg.System.IsProd)
	assert.Equal(t, "127.0.0.1:8080", cfg.System.Listen)
	assert.Equal(t, "postgres://u:p@localhost/mcc", cfg.System.DBConnectionString)
	assert.Equal(t, "redis://localhost:6379/0", cfg.System.RedisConnectionString)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.System.CORSOrigins)
	assert.Equal(t, "s3cret", cfg.Security.SignatureSecretKey)
	assert.False(t, UsesDevSecret(cfg))
	assert.Equal(t, "root@x.com", cfg.Admin.Email)
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.Equal(t, "pw", cfg.Admin.Password)
}

func TestConfig_ProdRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODE", "prod")

	_, err := Config()
	assert.ErrorContains(t, err, "JWT_SECRET")
}
