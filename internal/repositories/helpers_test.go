package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/rohits-web03/passvault/internal/repositories/repotest"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	users     repositories.UserRepository
	passwords repositories.PasswordRepository
	families  repositories.FamilyRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := repotest.NewDB(t)
	return &fixture{
		db:        db,
		users:     repositories.NewUserRepository(db),
		passwords: repositories.NewPasswordRepository(db),
		families:  repositories.NewFamilyRepository(db),
	}
}

func (f *fixture) user(t *testing.T, googleID, email string) *models.User {
	t.Helper()
	u, err := f.users.FindOrCreateByGoogleID(context.Background(), &models.User{
		GoogleID: googleID,
		Email:    email,
		Name:     "User " + googleID,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) entry(t *testing.T, owner *models.User, title string, mutate ...func(*models.PasswordEntry)) *models.PasswordEntry {
	t.Helper()
	e := &models.PasswordEntry{
		UserID:   owner.ID,
		Title:    title,
		Username: "user@" + title,
		Secret:   "c2VjcmV0",
	}
	for _, m := range mutate {
		m(e)
	}
	require.NoError(t, f.passwords.Create(context.Background(), e))
	return e
}

func ptr[T any](v T) *T {
	return &v
}

func ago(d time.Duration) time.Time {
	return time.Now().UTC().Add(-d)
}
