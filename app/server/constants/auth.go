package constants

import "time"

const (
	AuthTokenDuration = 8 * time.Hour // 访问令牌有效期，没有吊销机制，这是泄露令牌的唯一时效上限
)
