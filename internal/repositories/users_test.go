package repositories_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateByGoogleID_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.user(t, "google-1", "alice@example.com")
	second, err := f.users.FindOrCreateByGoogleID(ctx, &models.User{
		GoogleID: "google-1",
		Email:    "alice@example.com",
		Name:     "Alice Again",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "User google-1", second.Name, "existing record is returned untouched")

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindOrCreateByGoogleID_ConcurrentSignIns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n = 8
	ids := make([]uuid.UUID, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := f.users.FindOrCreateByGoogleID(ctx, &models.User{
				GoogleID: "google-race",
				Email:    "race@example.com",
				Name:     "Racer",
			})
			errs[i] = err
			if u != nil {
				ids[i] = u.ID
			}
		}(i)
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Where("google_id = ?", "google-race").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserLookups(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "google-2", "bob@example.com")

	byID, err := f.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", byID.Email)

	byEmail, err := f.users.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = f.users.FindByGoogleID(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.users.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.users.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
