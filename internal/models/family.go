package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// FamilyMember places a user in a family group. Rows are never updated.
type FamilyMember struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FamilyID  uuid.UUID `json:"familyId" gorm:"type:uuid;not null;uniqueIndex:idx_family_member"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_family_member"`
	Role      string    `json:"role" gorm:"type:varchar(16);not null;default:'member'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (m *FamilyMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SharedPassword makes an entry visible to every member of a family.
type SharedPassword struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PasswordID uuid.UUID `json:"passwordId" gorm:"type:uuid;not null;uniqueIndex:idx_shared_password"`
	FamilyID   uuid.UUID `json:"familyId" gorm:"type:uuid;not null;uniqueIndex:idx_shared_password;index"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Password *PasswordEntry `json:"-" gorm:"foreignKey:PasswordID;constraint:OnDelete:CASCADE"`
}

func (s *SharedPassword) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
