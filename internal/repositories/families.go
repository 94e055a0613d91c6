package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/models"
	"gorm.io/gorm"
)

// FamilyRepository stores family memberships and the entries shared with a
// family. Authorization decisions live in the caller.
type FamilyRepository interface {
	AddMember(ctx context.Context, member *models.FamilyMember) error
	Membership(ctx context.Context, familyID, userID uuid.UUID) (*models.FamilyMember, error)
	Members(ctx context.Context, familyID uuid.UUID) ([]models.FamilyMember, error)
	Share(ctx context.Context, passwordID, familyID uuid.UUID) error
	SharedPasswords(ctx context.Context, familyID uuid.UUID) ([]models.PasswordEntry, error)
}

type familyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) AddMember(ctx context.Context, member *models.FamilyMember) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.FamilyMember{}).
			Where("family_id = ? AND user_id = ?", member.FamilyID, member.UserID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: user is already a member", apperr.ErrValidation)
		}
		return tx.Create(member).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("add family member: %w: user is already a member", apperr.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("add family member: %w", err)
	}
	return nil
}

func (r *familyRepository) Membership(ctx context.Context, familyID, userID uuid.UUID) (*models.FamilyMember, error) {
	var member models.FamilyMember
	err := r.db.WithContext(ctx).
		Where("family_id = ? AND user_id = ?", familyID, userID).
		First(&member).Error
	if err != nil {
		return nil, fmt.Errorf("find membership in family %s: %w", familyID, notFound(err))
	}
	return &member, nil
}

func (r *familyRepository) Members(ctx context.Context, familyID uuid.UUID) ([]models.FamilyMember, error) {
	members := make([]models.FamilyMember, 0)
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("family_id = ?", familyID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("list members of family %s: %w", familyID, err)
	}
	return members, nil
}

// Share links the entry to the family and flags it as shared in one
// transaction.
func (r *familyRepository) Share(ctx context.Context, passwordID, familyID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.SharedPassword{}).
			Where("password_id = ? AND family_id = ?", passwordID, familyID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: already shared with this family", apperr.ErrValidation)
		}
		link := models.SharedPassword{PasswordID: passwordID, FamilyID: familyID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return tx.Model(&models.PasswordEntry{}).
			Where("id = ?", passwordID).
			Updates(map[string]any{"is_shared": true, "updated_at": tx.NowFunc()}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("share password: %w: already shared with this family", apperr.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("share password %s: %w", passwordID, err)
	}
	return nil
}

func (r *familyRepository) SharedPasswords(ctx context.Context, familyID uuid.UUID) ([]models.PasswordEntry, error) {
	entries := make([]models.PasswordEntry, 0)
	err := r.db.WithContext(ctx).
		Select("passwords.*").
		Joins("JOIN shared_passwords ON shared_passwords.password_id = passwords.id").
		Where("shared_passwords.family_id = ?", familyID).
		Order("passwords.created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list passwords shared with family %s: %w", familyID, err)
	}
	return entries, nil
}
