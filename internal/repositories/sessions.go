package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/rohits-web03/passvault/internal/models"
	"gorm.io/gorm"
)

// SessionStore persists server-side sessions. Get reports a missing or
// expired session as apperr.ErrNotFound.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionReaper is implemented by stores that need expired rows pruned.
type SessionReaper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// GormSessionStore keeps sessions in the relational store next to the
// users they belong to.
type GormSessionStore struct {
	db *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

func (s *GormSessionStore) Create(ctx context.Context, session *models.Session) error {
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *GormSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, s.db.NowFunc()).
		First(&session).Error
	if err != nil {
		return nil, fmt.Errorf("get session: %w", notFound(err))
	}
	return &session, nil
}

func (s *GormSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *GormSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

var (
	_ SessionStore  = (*GormSessionStore)(nil)
	_ SessionReaper = (*GormSessionStore)(nil)
)
