package vault

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/rohits-web03/passvault/internal/utils"
)

// CreatePasswordInput is the body of a create request. Strength is computed
// by the client from the plaintext and defaults to medium.
type CreatePasswordInput struct {
	Title      string          `json:"title" validate:"required,max=200"`
	Username   string          `json:"username" validate:"required,max=320"`
	Secret     string          `json:"secret" validate:"required,max=8192"`
	Website    *string         `json:"website" validate:"omitnil,max=2048"`
	Icon       *string         `json:"icon" validate:"omitnil,max=64"`
	IsFavorite bool            `json:"isFavorite"`
	Strength   models.Strength `json:"strength" validate:"omitempty,oneof=weak medium strong"`
	LastUsed   *time.Time      `json:"lastUsed"`
}

// UpdatePasswordInput is a partial update; absent fields stay as stored.
// Website and Icon may be sent as null to clear them.
type UpdatePasswordInput struct {
	Title      *string                `json:"title" validate:"omitnil,min=1,max=200"`
	Username   *string                `json:"username" validate:"omitnil,min=1,max=320"`
	Secret     *string                `json:"secret" validate:"omitnil,min=1,max=8192"`
	Website    utils.Optional[string] `json:"website" validate:"omitempty,max=2048"`
	Icon       utils.Optional[string] `json:"icon" validate:"omitempty,max=64"`
	IsFavorite *bool                  `json:"isFavorite"`
	IsShared   *bool                  `json:"isShared"`
	Strength   *models.Strength       `json:"strength" validate:"omitnil,oneof=weak medium strong"`
	LastUsed   *time.Time             `json:"lastUsed"`
}

// PasswordService is the owner-scoped entry API used by the handlers. It
// validates inputs and seals secrets before they reach the repository.
type PasswordService struct {
	repo   repositories.PasswordRepository
	sealer Sealer
}

func NewPasswordService(repo repositories.PasswordRepository, sealer Sealer) *PasswordService {
	return &PasswordService{repo: repo, sealer: sealer}
}

func (s *PasswordService) Protection() Protection {
	return s.sealer.Protection()
}

func (s *PasswordService) List(ctx context.Context, userID uuid.UUID, filter repositories.ListFilter) ([]models.PasswordEntry, error) {
	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if err := s.openAll(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *PasswordService) Get(ctx context.Context, id, userID uuid.UUID) (*models.PasswordEntry, error) {
	entry, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.open(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *PasswordService) Create(ctx context.Context, userID uuid.UUID, in CreatePasswordInput) (*models.PasswordEntry, error) {
	if err := utils.Validate(in); err != nil {
		return nil, err
	}

	sealed, err := s.sealer.Seal(userID, in.Secret)
	if err != nil {
		return nil, err
	}
	strength := in.Strength
	if strength == "" {
		strength = models.StrengthMedium
	}

	entry := &models.PasswordEntry{
		UserID:     userID,
		Title:      in.Title,
		Username:   in.Username,
		Secret:     sealed,
		Website:    in.Website,
		Icon:       in.Icon,
		IsFavorite: in.IsFavorite,
		Strength:   strength,
	}
	if in.LastUsed != nil {
		t := in.LastUsed.UTC()
		entry.LastUsedAt = &t
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	entry.Secret = in.Secret
	return entry, nil
}

func (s *PasswordService) Update(ctx context.Context, id, userID uuid.UUID, in UpdatePasswordInput) (*models.PasswordEntry, error) {
	if err := utils.Validate(in); err != nil {
		return nil, err
	}

	update := repositories.PasswordUpdate{
		Title:      in.Title,
		Username:   in.Username,
		Website:    in.Website,
		Icon:       in.Icon,
		IsFavorite: in.IsFavorite,
		IsShared:   in.IsShared,
		Strength:   in.Strength,
		LastUsedAt: in.LastUsed,
	}
	if in.Secret != nil {
		sealed, err := s.sealer.Seal(userID, *in.Secret)
		if err != nil {
			return nil, err
		}
		update.Secret = &sealed
	}

	entry, err := s.repo.Update(ctx, id, userID, update)
	if err != nil {
		return nil, err
	}
	if err := s.open(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *PasswordService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *PasswordService) Stats(ctx context.Context, userID uuid.UUID) (models.PasswordStats, error) {
	return s.repo.Stats(ctx, userID)
}

func (s *PasswordService) open(entry *models.PasswordEntry) error {
	plain, err := s.sealer.Open(entry.UserID, entry.Secret)
	if err != nil {
		return fmt.Errorf("open password %s: %w", entry.ID, err)
	}
	entry.Secret = plain
	return nil
}

func (s *PasswordService) openAll(entries []models.PasswordEntry) error {
	for i := range entries {
		if err := s.open(&entries[i]); err != nil {
			return err
		}
	}
	return nil
}
