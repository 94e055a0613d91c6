package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "g-alice", "alice@example.com")
	bob := f.user(t, "g-bob", "bob@example.com")
	familyID := uuid.New()

	require.NoError(t, f.families.AddMember(ctx, &models.FamilyMember{FamilyID: familyID, UserID: alice.ID, Role: models.RoleOwner}))
	require.NoError(t, f.families.AddMember(ctx, &models.FamilyMember{FamilyID: familyID, UserID: bob.ID, Role: models.RoleMember}))

	err := f.families.AddMember(ctx, &models.FamilyMember{FamilyID: familyID, UserID: bob.ID, Role: models.RoleMember})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	members, err := f.families.Members(ctx, familyID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	emails := []string{members[0].User.Email, members[1].User.Email}
	assert.ElementsMatch(t, []string{"alice@example.com", "bob@example.com"}, emails)

	m, err := f.families.Membership(ctx, familyID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, m.Role)

	_, err = f.families.Membership(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFamilyShare(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "g-alice", "alice@example.com")
	familyID := uuid.New()
	require.NoError(t, f.families.AddMember(ctx, &models.FamilyMember{FamilyID: familyID, UserID: alice.ID, Role: models.RoleOwner}))

	netflix := f.entry(t, alice, "Netflix")
	f.entry(t, alice, "Private")

	require.NoError(t, f.families.Share(ctx, netflix.ID, familyID))
	assert.ErrorIs(t, f.families.Share(ctx, netflix.ID, familyID), apperr.ErrValidation)

	shared, err := f.families.SharedPasswords(ctx, familyID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Netflix"}, titles(shared))

	got, err := f.passwords.Get(ctx, netflix.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, got.IsShared)

	sharedOnly, err := f.passwords.List(ctx, alice.ID, repositories.ListFilter{Category: repositories.CategoryShared})
	require.NoError(t, err)
	assert.Equal(t, []string{"Netflix"}, titles(sharedOnly))
}

func TestFamilyShare_RemovedWithPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "g-alice", "alice@example.com")
	familyID := uuid.New()
	e := f.entry(t, alice, "Netflix")
	require.NoError(t, f.families.Share(ctx, e.ID, familyID))

	require.NoError(t, f.passwords.Delete(ctx, e.ID, alice.ID))

	shared, err := f.families.SharedPasswords(ctx, familyID)
	require.NoError(t, err)
	assert.Empty(t, shared)
}
