package auth

import (
	"errors"
	"mc-command-center/app/server/store"
)

var (
	ErrValidation         = errors.New("missing or malformed input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = store.ErrDuplicateEmail
	ErrStoreUnavailable   = store.ErrUnavailable

	// Access Guard 的拒绝原因，对外都是 401 ，区分只用于诊断
	ErrNoToken      = errors.New("no token")
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidUser  = errors.New("invalid user")

	ErrForbidden = errors.New("forbidden")
)

// Reason 把错误归类为简短的标签，用于日志和指标
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrDuplicateEmail):
		return "duplicate_email"
	case errors.Is(err, ErrNoToken):
		return "no_token"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, ErrInvalidUser):
		return "invalid_user"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "internal"
	}
}
