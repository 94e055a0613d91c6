package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is keyed externally by GoogleID; the unique index is what keeps
// concurrent first sign-ins from creating duplicates.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoogleID  string    `json:"-" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Picture   *string   `json:"picture,omitempty"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
