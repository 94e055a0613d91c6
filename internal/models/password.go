package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Valid reports whether s is one of the three classifications.
func (s Strength) Valid() bool {
	switch s {
	case StrengthWeak, StrengthMedium, StrengthStrong:
		return true
	}
	return false
}

// PasswordEntry is a stored secret. Secret holds whatever the active sealer
// produced; with the default sealer that is the client's reversible encoding.
type PasswordEntry struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	Title      string     `json:"title" gorm:"not null"`
	Username   string     `json:"username" gorm:"not null"`
	Secret     string     `json:"secret" gorm:"column:secret_value;type:text;not null"`
	Website    *string    `json:"website"`
	Icon       *string    `json:"icon"`
	IsFavorite bool       `json:"isFavorite" gorm:"not null;default:false"`
	IsShared   bool       `json:"isShared" gorm:"not null;default:false"`
	Strength   Strength   `json:"strength" gorm:"type:varchar(8);not null;default:'medium'"`
	LastUsedAt *time.Time `json:"lastUsed" gorm:"column:last_used_at"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (PasswordEntry) TableName() string {
	return "passwords"
}

func (p *PasswordEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PasswordStats mirrors the dashboard categories.
type PasswordStats struct {
	All       int64 `json:"all"`
	Favorites int64 `json:"favorites"`
	Shared    int64 `json:"shared"`
	Weak      int64 `json:"weak"`
}
