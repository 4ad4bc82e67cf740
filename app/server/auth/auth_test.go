package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/require"
	"mc-command-center/app/server/jwt"
	"mc-command-center/app/server/models"
	"mc-command-center/app/server/store"
)

// 测试用的低成本参数
var testParams = &argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// memStore 是 CredentialStore 的内存实现
type memStore struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*models.User
	fail   error
}

func newMemStore() *memStore {
	return &memStore{byID: map[uint]*models.User{}}
}

func (m *memStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return nil, m.fail
	}
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) FindByID(_ context.Context, id uint) (*models.PublicUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return nil, m.fail
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u.Public(), nil
}

func (m *memStore) Create(_ context.Context, user *models.User) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return 0, m.fail
	}
	for _, u := range m.byID {
		if u.Email == user.Email {
			return 0, store.ErrDuplicateEmail
		}
	}
	m.nextID++
	cp := *user
	cp.ID = m.nextID
	cp.CreatedAt = time.Now()
	m.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) setAdmin(id uint, isAdmin bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[id].IsAdmin = isAdmin
}

func (m *memStore) setDigest(id uint, digest string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[id].PasswordDigest = digest
}

var errDown = errors.New("connection refused")

func newTokens(t *testing.T) *jwt.JWT {
	t.Helper()
	j, err := jwt.New("test-secret")
	require.NoError(t, err)
	return j
}

func newAuthenticator(t *testing.T, s CredentialStore, j *jwt.JWT) *Authenticator {
	t.Helper()
	a, err := NewAuthenticator(s, j, NewPasswordHasher(testParams))
	require.NoError(t, err)
	return a
}
