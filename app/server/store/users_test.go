package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mc-command-center/app/server/models"
)

func TestUsers_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))

	id, err := users.Create(ctx, &models.User{
		Email:          "a@x.com",
		Username:       "alice",
		PasswordDigest: "$argon2id$digest",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	full, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, full.ID)
	assert.Equal(t, "$argon2id$digest", full.PasswordDigest)
	assert.False(t, full.IsAdmin)
	assert.False(t, full.CreatedAt.IsZero())

	public, err := users.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", public.Email)
	assert.Equal(t, "alice", public.Username)
	assert.NotContains(t, toMap(t, public), "password")
	assert.NotContains(t, toMap(t, public), "password_digest")
}

func TestUsers_NotFound(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))

	_, err := users.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = users.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers_EmailIsExactMatch(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))

	_, err := users.Create(ctx, &models.User{Email: "a@x.com", Username: "alice", PasswordDigest: "d"})
	require.NoError(t, err)

	_, err = users.FindByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))

	firstID, err := users.Create(ctx, &models.User{Email: "a@x.com", Username: "alice", PasswordDigest: "first"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &models.User{Email: "a@x.com", Username: "mallory", PasswordDigest: "second", IsAdmin: true})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	first, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, firstID, first.ID)
	assert.Equal(t, "alice", first.Username)
	assert.Equal(t, "first", first.PasswordDigest)
	assert.False(t, first.IsAdmin)

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUsers_ListNewestFirstWithoutDigest(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := users.Create(ctx, &models.User{Email: email, Username: email, PasswordDigest: "secret-digest"})
		require.NoError(t, err)
	}

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c@x.com", list[0].Email)
	assert.Equal(t, "a@x.com", list[2].Email)

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-digest")
	assert.NotContains(t, string(raw), "password")
}

func TestUsers_ListEmpty(t *testing.T) {
	list, err := NewUsers(newTestDB(t)).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUsers_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUsers(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = users.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = users.FindByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = users.Create(ctx, &models.User{Email: "a@x.com", PasswordDigest: "d"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = users.List(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
}
