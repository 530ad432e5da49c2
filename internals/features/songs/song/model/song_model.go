package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	versionModel "pelayananku_backend/internals/features/songs/song_version/model"
)

// SongModel merepresentasikan tabel songs.
// ScheduleID nullable: lagu bisa berdiri sendiri di katalog
// atau ditempel ke sebuah schedule.
type SongModel struct {
	ID         uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string                          `gorm:"size:150;not null" json:"title"`
	Artist     string                          `gorm:"size:100;not null" json:"artist"`
	Genre      *string                         `gorm:"size:50" json:"genre,omitempty"`
	ScheduleID *uuid.UUID                      `gorm:"type:uuid;index" json:"schedule_id,omitempty"`
	Versions   []versionModel.SongVersionModel `gorm:"foreignKey:SongID" json:"versions,omitempty"`
	CreatedAt  time.Time                       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time                       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SongModel) TableName() string {
	return "songs"
}

func (s *SongModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
