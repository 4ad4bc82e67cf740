package config

type Config struct {
	System struct {
		IsProd                bool     // 是否为生产环境
		Listen                string   // 监听地址
		DBConnectionString    string   // 数据库连接：默认是 SQLite 文件路径， postgres:// 开头则使用 Postgres
		RedisConnectionString string   // Redis 连接字符串，为空则不启用缓存
		CORSOrigins           []string // 允许的跨域来源，为空表示全部允许
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于签发 JWT ，更新会导致旧有令牌全部失效
	}
	Admin struct {
		Email    string // 首次启动时创建的管理员，为空则跳过
		Username string
		Password string
	}
}
