package auth

import (
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
	"strings"
)

var ErrUnknownDigest = errors.New("unknown password digest format")

// PasswordHasher 新密码一律使用 argon2id ；校验时兼容旧库导入的 bcrypt 摘要
type PasswordHasher struct {
	params *argon2id.Params
}

func NewPasswordHasher(params *argon2id.Params) *PasswordHasher {
	if params == nil {
		params = argon2id.DefaultParams
	}

	return &PasswordHasher{params: params}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrValidation
	}

	digest, err := argon2id.CreateHash(password, h.params)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return digest, nil
}

// Verify 比较明文和摘要，比较过程是常数时间的
func (h *PasswordHasher) Verify(password string, digest string) (bool, error) {
	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		match, err := argon2id.ComparePasswordAndHash(password, digest)
		if err != nil {
			return false, fmt.Errorf("check argon2id digest: %w", err)
		}
		return match, nil

	case isBcrypt(digest):
		if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return false, nil
			}
			return false, fmt.Errorf("check bcrypt digest: %w", err)
		}
		return true, nil

	default:
		return false, ErrUnknownDigest
	}
}

func isBcrypt(digest string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(digest, prefix) {
			return true
		}
	}

	return false
}
