package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/utils"
	"gorm.io/gorm"
)

const (
	CategoryAll       = "all"
	CategoryFavorites = "favorites"
	CategoryShared    = "shared"
	CategoryWeak      = "weak"
)

// ListFilter narrows a listing. The zero value lists everything.
type ListFilter struct {
	Query    string
	Category string
}

// PasswordUpdate carries a partial update; nil fields are left untouched.
// Website and Icon are written, NULL included, whenever they are Set.
type PasswordUpdate struct {
	Title      *string
	Username   *string
	Secret     *string
	Website    utils.Optional[string]
	Icon       utils.Optional[string]
	IsFavorite *bool
	IsShared   *bool
	Strength   *models.Strength
	LastUsedAt *time.Time
}

func (u PasswordUpdate) columns(now time.Time) map[string]any {
	cols := map[string]any{"updated_at": now}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Username != nil {
		cols["username"] = *u.Username
	}
	if u.Secret != nil {
		cols["secret_value"] = *u.Secret
	}
	if u.Website.Set {
		cols["website"] = nullable(u.Website.Value)
	}
	if u.Icon.Set {
		cols["icon"] = nullable(u.Icon.Value)
	}
	if u.IsFavorite != nil {
		cols["is_favorite"] = *u.IsFavorite
	}
	if u.IsShared != nil {
		cols["is_shared"] = *u.IsShared
	}
	if u.Strength != nil {
		cols["strength"] = string(*u.Strength)
	}
	if u.LastUsedAt != nil {
		cols["last_used_at"] = u.LastUsedAt.UTC()
	}
	return cols
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// PasswordRepository is the owner-scoped entry store. Every method takes the
// owning user id and filters on it; an entry owned by someone else is
// reported exactly like a missing one.
type PasswordRepository interface {
	List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]models.PasswordEntry, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*models.PasswordEntry, error)
	Create(ctx context.Context, entry *models.PasswordEntry) error
	Update(ctx context.Context, id, userID uuid.UUID, update PasswordUpdate) (*models.PasswordEntry, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (models.PasswordStats, error)
}

type passwordRepository struct {
	db *gorm.DB
}

func NewPasswordRepository(db *gorm.DB) PasswordRepository {
	return &passwordRepository{db: db}
}

func (r *passwordRepository) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]models.PasswordEntry, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Query != "" {
		like := "%" + escapeLike(strings.ToLower(filter.Query)) + "%"
		q = q.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(username) LIKE ? ESCAPE '\')`, like, like)
	}

	switch filter.Category {
	case "", CategoryAll:
	case CategoryFavorites:
		q = q.Where("is_favorite = ?", true)
	case CategoryShared:
		q = q.Where("is_shared = ?", true)
	case CategoryWeak:
		q = q.Where("strength = ?", string(models.StrengthWeak))
	default:
		return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrValidation, filter.Category)
	}

	entries := make([]models.PasswordEntry, 0)
	err := q.Order("last_used_at DESC NULLS LAST").
		Order("created_at DESC").
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list passwords for user %s: %w", userID, err)
	}
	return entries, nil
}

func (r *passwordRepository) Get(ctx context.Context, id, userID uuid.UUID) (*models.PasswordEntry, error) {
	var entry models.PasswordEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		return nil, fmt.Errorf("get password %s: %w", id, notFound(err))
	}
	return &entry, nil
}

func (r *passwordRepository) Create(ctx context.Context, entry *models.PasswordEntry) error {
	if entry.UserID == uuid.Nil {
		return fmt.Errorf("%w: owner is required", apperr.ErrValidation)
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create password: %w", err)
	}
	return nil
}

func (r *passwordRepository) Update(ctx context.Context, id, userID uuid.UUID, update PasswordUpdate) (*models.PasswordEntry, error) {
	var entry models.PasswordEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PasswordEntry{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(update.columns(tx.NowFunc()))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update password %s: %w", id, notFound(err))
	}
	return &entry, nil
}

func (r *passwordRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.PasswordEntry{})
	if res.Error != nil {
		return fmt.Errorf("delete password %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete password %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *passwordRepository) Stats(ctx context.Context, userID uuid.UUID) (models.PasswordStats, error) {
	var stats models.PasswordStats
	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.All, "user_id = ?", []any{userID}},
		{&stats.Favorites, "user_id = ? AND is_favorite = ?", []any{userID, true}},
		{&stats.Shared, "user_id = ? AND is_shared = ?", []any{userID, true}},
		{&stats.Weak, "user_id = ? AND strength = ?", []any{userID, string(models.StrengthWeak)}},
	}
	for _, c := range counts {
		err := r.db.WithContext(ctx).
			Model(&models.PasswordEntry{}).
			Where(c.query, c.args...).
			Count(c.dest).Error
		if err != nil {
			return models.PasswordStats{}, fmt.Errorf("count passwords for user %s: %w", userID, err)
		}
	}
	return stats, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
