package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "pelayananku_backend/internals/features/users/user/model"
)

// DepartmentModel merepresentasikan tabel departments (tenant per tim pelayanan)
type DepartmentModel struct {
	ID          uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                `gorm:"size:100;not null" json:"name"`
	Description *string               `gorm:"type:text" json:"description,omitempty"`
	Users       []userModel.UserModel `gorm:"foreignKey:DepartmentID" json:"users,omitempty"`
	CreatedAt   time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

func (d *DepartmentModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
