package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id string, owner *models.User, expiresAt time.Time) *models.Session {
	return &models.Session{
		ID:        id,
		UserID:    owner.ID,
		Email:     owner.Email,
		Name:      owner.Name,
		ExpiresAt: expiresAt,
	}
}

func TestGormSessionStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	store := repositories.NewGormSessionStore(f.db)
	alice := f.user(t, "g-alice", "alice@example.com")

	require.NoError(t, store.Create(ctx, newSession("live", alice, time.Now().Add(time.Hour))))
	require.NoError(t, store.Create(ctx, newSession("stale", alice, time.Now().Add(-time.Minute))))

	got, err := store.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.UserID)
	assert.Equal(t, "alice@example.com", got.Snapshot().Email)

	_, err = store.Get(ctx, "stale")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	removed, err := store.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	require.NoError(t, store.Delete(ctx, "live"))
	_, err = store.Get(ctx, "live")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, store.Delete(ctx, "live"), "deleting twice is harmless")
}

func TestRedisSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	store := repositories.NewRedisSessionStore(client)
	owner := &models.User{Email: "alice@example.com", Name: "Alice"}

	require.NoError(t, store.Create(ctx, newSession("abc", owner, time.Now().Add(time.Hour))))
	assert.True(t, mr.Exists("session:abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "Alice", got.Name)

	mr.FastForward(2 * time.Hour)
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, store.Create(ctx, newSession("def", owner, time.Now().Add(time.Hour))))
	require.NoError(t, store.Delete(ctx, "def"))
	_, err = store.Get(ctx, "def")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = store.Create(ctx, newSession("old", owner, time.Now().Add(-time.Second)))
	assert.Error(t, err)
}
