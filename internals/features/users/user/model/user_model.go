package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pelayananku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name                  string     `gorm:"size:50;not null" json:"name"`
	Email                 string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash          string     `gorm:"not null" json:"-"`
	Role                  string     `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	AvatarURL             *string    `gorm:"size:255" json:"avatar_url,omitempty"`
	InitialSetupCompleted bool       `gorm:"not null;default:false" json:"initial_setup_completed"`
	DepartmentID          *uuid.UUID `gorm:"type:uuid;index" json:"department_id,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate mengisi ID dan role default sebelum insert
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleMember
	}
	return nil
}
