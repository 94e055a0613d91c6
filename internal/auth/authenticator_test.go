package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/auth"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/rohits-web03/passvault/internal/repositories/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeVerifier map[string]auth.Identity

func (f fakeVerifier) Verify(_ context.Context, credential string) (auth.Identity, error) {
	id, ok := f[credential]
	if !ok {
		return auth.Identity{}, apperr.ErrInvalidCredential
	}
	if id.Email == "" {
		return auth.Identity{}, apperr.ErrIncompleteIdentity
	}
	return id, nil
}

type failingStore struct {
	repositories.SessionStore
	err error
}

func (s failingStore) Delete(context.Context, string) error { return s.err }

func setup(t *testing.T) (*auth.Authenticator, *gorm.DB, repositories.SessionStore) {
	t.Helper()
	db := repotest.NewDB(t)
	store := repositories.NewGormSessionStore(db)
	verifier := fakeVerifier{
		"alice-token":   {Subject: "g-alice", Email: "alice@example.com", Name: "Alice"},
		"alice-token-2": {Subject: "g-alice", Email: "alice@example.com", Name: "Alice"},
		"bob-token":     {Subject: "g-bob", Email: "bob@example.com", Name: "Bob"},
		"nameless":      {Subject: "g-x"},
	}
	return auth.NewAuthenticator(verifier, repositories.NewUserRepository(db), store, time.Hour), db, store
}

func TestSignIn_IdempotentUser(t *testing.T) {
	a, db, _ := setup(t)
	ctx := context.Background()

	first, err := a.SignIn(ctx, "alice-token")
	require.NoError(t, err)
	second, err := a.SignIn(ctx, "alice-token-2")
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
	assert.NotEqual(t, first.ID, second.ID, "each sign-in opens its own session")
	assert.Equal(t, "alice@example.com", first.Snapshot().Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), first.ExpiresAt, time.Minute)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
}

func TestSignIn_FailuresCreateNothing(t *testing.T) {
	a, db, _ := setup(t)
	ctx := context.Background()

	_, err := a.SignIn(ctx, "forged")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredential)

	_, err = a.SignIn(ctx, "nameless")
	assert.ErrorIs(t, err, apperr.ErrIncompleteIdentity)

	var users, sessions int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Session{}).Count(&sessions).Error)
	assert.Zero(t, users)
	assert.Zero(t, sessions)
}

func TestResolveAndSignOut(t *testing.T) {
	a, _, _ := setup(t)
	ctx := context.Background()

	session, err := a.SignIn(ctx, "bob-token")
	require.NoError(t, err)

	got, err := a.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)

	require.NoError(t, a.SignOut(ctx, session.ID))

	_, err = a.Resolve(ctx, session.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = a.Resolve(ctx, "")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	assert.NoError(t, a.SignOut(ctx, ""), "signing out without a session is a no-op")
}

func TestSignOut_StoreFailureSurfaces(t *testing.T) {
	db := repotest.NewDB(t)
	store := failingStore{SessionStore: repositories.NewGormSessionStore(db), err: errors.New("connection reset")}
	a := auth.NewAuthenticator(fakeVerifier{}, repositories.NewUserRepository(db), store, time.Hour)

	err := a.SignOut(context.Background(), "some-session")
	assert.ErrorIs(t, err, apperr.ErrInternal)
	assert.Equal(t, 500, apperr.Status(err))
}
