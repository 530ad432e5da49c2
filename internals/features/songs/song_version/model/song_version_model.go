package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SongVersionModel merepresentasikan tabel song_versions
// (aransemen sebuah lagu: nada dasar, link chord, link video)
type SongVersionModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VersionName    string    `gorm:"size:100;not null" json:"version_name"`
	Classification string    `gorm:"size:50;not null" json:"classification"`
	Key            string    `gorm:"size:10;not null" json:"key"`
	LinkChord      *string   `gorm:"size:255" json:"link_chord,omitempty"`
	LinkVideo      *string   `gorm:"size:255" json:"link_video,omitempty"`
	SongID         uuid.UUID `gorm:"type:uuid;not null;index" json:"song_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SongVersionModel) TableName() string {
	return "song_versions"
}

func (v *SongVersionModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
