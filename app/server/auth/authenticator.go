package auth

import (
	"context"
	"errors"
	"fmt"
	"mc-command-center/app/server/constants"
	"mc-command-center/app/server/jwt"
	"mc-command-center/app/server/models"
	"mc-command-center/app/server/store"
	"time"
)

// CredentialStore 是认证需要的最小存储接口，由 store.Users 实现
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.PublicUser, error)
	Create(ctx context.Context, user *models.User) (uint, error)
}

type Authenticator struct {
	users    CredentialStore
	tokens   *jwt.JWT
	hasher   *PasswordHasher
	validity time.Duration

	// 邮箱不存在时也做一次同样代价的校验，避免通过响应时间枚举账号
	dummyDigest string
}

func NewAuthenticator(users CredentialStore, tokens *jwt.JWT, hasher *PasswordHasher) (*Authenticator, error) {
	dummyDigest, err := hasher.Hash("mc-command-center/dummy")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy digest: %w", err)
	}

	return &Authenticator{
		users:       users,
		tokens:      tokens,
		hasher:      hasher,
		validity:    constants.AuthTokenDuration,
		dummyDigest: dummyDigest,
	}, nil
}

// Login 校验邮箱和密码，成功后签发访问令牌。
// 邮箱不存在和密码错误返回同一个 ErrInvalidCredentials 。
func (a *Authenticator) Login(ctx context.Context, email string, password string) (string, *models.PublicUser, error) {
	if email == "" || password == "" {
		return "", nil, ErrValidation
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_, _ = a.hasher.Verify(password, a.dummyDigest)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	match, err := a.hasher.Verify(password, user.PasswordDigest)
	if err != nil {
		// 摘要损坏或格式未知（例如明文密码），对外仍然是凭据无效
		return "", nil, fmt.Errorf("%w: user %d: %w", ErrInvalidCredentials, user.ID, err)
	}
	if !match {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := a.tokens.SignToken(&jwt.User{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, a.validity)
	if err != nil {
		return "", nil, err
	}

	return token, user.Public(), nil
}

// CreateAccount 调用方必须已经通过 Guard 和 RequireAdmin 的检查
func (a *Authenticator) CreateAccount(ctx context.Context, email string, username string, password string, isAdmin bool) (uint, error) {
	if email == "" || username == "" || password == "" {
		return 0, ErrValidation
	}

	digest, err := a.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	id, err := a.users.Create(ctx, &models.User{
		Email:          email,
		Username:       username,
		PasswordDigest: digest,
		IsAdmin:        isAdmin,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}
