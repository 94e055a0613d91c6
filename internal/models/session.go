package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record a session cookie points at. The user
// fields are a snapshot taken at sign-in.
type Session struct {
	ID        string    `json:"-" gorm:"primaryKey;size:64"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Email     string    `json:"email" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Picture   *string   `json:"picture,omitempty"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionUser is the snapshot returned to clients.
type SessionUser struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Picture *string   `json:"picture,omitempty"`
}

func (s *Session) Snapshot() SessionUser {
	return SessionUser{ID: s.UserID, Email: s.Email, Name: s.Name, Picture: s.Picture}
}
