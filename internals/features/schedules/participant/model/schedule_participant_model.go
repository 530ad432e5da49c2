package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "pelayananku_backend/internals/features/users/user/model"
)

// Status undangan participant pada sebuah schedule
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusRejected  = "REJECTED"
)

// ValidStatus memeriksa apakah status termasuk nilai yang dikenal
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

// ScheduleParticipantModel merepresentasikan tabel schedule_participants.
// Unik per (schedule_id, user_id): duplikasi ditolak oleh database,
// bukan oleh pola check-then-insert.
type ScheduleParticipantModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	ScheduleID   uuid.UUID           `gorm:"type:uuid;not null;index;uniqueIndex:uq_schedule_participants_schedule_user" json:"schedule_id"`
	UserID       uuid.UUID           `gorm:"type:uuid;not null;index;uniqueIndex:uq_schedule_participants_schedule_user" json:"user_id"`
	DepartmentID uuid.UUID           `gorm:"type:uuid;not null;index" json:"department_id"`
	Status       string              `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	User         userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt    time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScheduleParticipantModel) TableName() string {
	return "schedule_participants"
}

func (p *ScheduleParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return nil
}
