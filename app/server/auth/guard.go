package auth

import (
	"context"
	"errors"
	"fmt"
	"mc-command-center/app/server/jwt"
	"mc-command-center/app/server/models"
	"mc-command-center/app/server/store"
	"strings"
)

type UserResolver interface {
	FindByID(ctx context.Context, id uint) (*models.PublicUser, error)
}

// Guard 对每个受保护请求校验令牌，并按令牌中的 id 重新读取当前用户记录。
// 授权只看当前记录，不看令牌里签发时的 is_admin 快照。
type Guard struct {
	users  UserResolver
	tokens *jwt.JWT
}

func NewGuard(users UserResolver, tokens *jwt.JWT) *Guard {
	return &Guard{users: users, tokens: tokens}
}

// Verify 输入原始的 Authorization 头，返回当前的用户身份或拒绝原因
func (g *Guard) Verify(ctx context.Context, authHeader string) (*models.PublicUser, error) {
	token, ok := BearerToken(authHeader)
	if !ok {
		return nil, ErrNoToken
	}

	claims, err := g.tokens.ParseUser(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := g.users.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrInvalidUser, claims.ID)
		}
		return nil, fmt.Errorf("resolve user %d: %w", claims.ID, err)
	}

	return user, nil
}

// RequireAdmin 在 Verify 通过之后按路由使用
func RequireAdmin(user *models.PublicUser) error {
	if user == nil || !user.IsAdmin {
		return ErrForbidden
	}

	return nil
}

// BearerToken 从 "Bearer <token>" 中取出 token
func BearerToken(authHeader string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}

	return token, true
}
