package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	participantModel "pelayananku_backend/internals/features/schedules/participant/model"
	songModel "pelayananku_backend/internals/features/songs/song/model"
)

// ScheduleModel merepresentasikan tabel schedules (jadwal ibadah per department)
type ScheduleModel struct {
	ID           uuid.UUID                                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string                                      `gorm:"size:100;not null" json:"name"`
	Date         time.Time                                   `gorm:"not null" json:"date"`
	DepartmentID uuid.UUID                                   `gorm:"type:uuid;not null;index" json:"department_id"`
	Participants []participantModel.ScheduleParticipantModel `gorm:"foreignKey:ScheduleID" json:"participants,omitempty"`
	Songs        []songModel.SongModel                       `gorm:"foreignKey:ScheduleID" json:"songs,omitempty"`
	CreatedAt    time.Time                                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                                   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

func (s *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
