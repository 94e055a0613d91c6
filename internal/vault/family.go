package vault

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/rohits-web03/passvault/internal/utils"
)

type AddMemberInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ShareInput struct {
	FamilyID uuid.UUID `json:"familyId" validate:"required"`
}

// FamilyService gates family operations on membership. A family the caller
// does not belong to is reported as not found.
type FamilyService struct {
	families  repositories.FamilyRepository
	users     repositories.UserRepository
	passwords *PasswordService
}

func NewFamilyService(families repositories.FamilyRepository, users repositories.UserRepository, passwords *PasswordService) *FamilyService {
	return &FamilyService{families: families, users: users, passwords: passwords}
}

// CreateFamily starts a family owned by userID.
func (s *FamilyService) CreateFamily(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	familyID := uuid.New()
	err := s.families.AddMember(ctx, &models.FamilyMember{
		FamilyID: familyID,
		UserID:   userID,
		Role:     models.RoleOwner,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return familyID, nil
}

// AddMember lets the family owner add an existing user by email.
func (s *FamilyService) AddMember(ctx context.Context, familyID, ownerID uuid.UUID, in AddMemberInput) (*models.FamilyMember, error) {
	if err := utils.Validate(in); err != nil {
		return nil, err
	}

	caller, err := s.families.Membership(ctx, familyID, ownerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleOwner {
		return nil, fmt.Errorf("add member to family %s: %w", familyID, apperr.ErrNotFound)
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	member := &models.FamilyMember{
		FamilyID: familyID,
		UserID:   user.ID,
		Role:     models.RoleMember,
	}
	if err := s.families.AddMember(ctx, member); err != nil {
		return nil, err
	}
	member.User = user
	return member, nil
}

func (s *FamilyService) Members(ctx context.Context, familyID, userID uuid.UUID) ([]models.FamilyMember, error) {
	if _, err := s.families.Membership(ctx, familyID, userID); err != nil {
		return nil, err
	}
	return s.families.Members(ctx, familyID)
}

// Share makes an entry the caller owns visible to a family they belong to.
func (s *FamilyService) Share(ctx context.Context, entryID, userID uuid.UUID, in ShareInput) error {
	if err := utils.Validate(in); err != nil {
		return err
	}
	if _, err := s.passwords.repo.Get(ctx, entryID, userID); err != nil {
		return err
	}
	if _, err := s.families.Membership(ctx, in.FamilyID, userID); err != nil {
		return err
	}
	return s.families.Share(ctx, entryID, in.FamilyID)
}

func (s *FamilyService) SharedPasswords(ctx context.Context, familyID, userID uuid.UUID) ([]models.PasswordEntry, error) {
	if _, err := s.families.Membership(ctx, familyID, userID); err != nil {
		return nil, err
	}
	entries, err := s.families.SharedPasswords(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if err := s.passwords.openAll(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
