package dto

import (
	"time"

	"github.com/google/uuid"

	"pelayananku_backend/internals/features/songs/song_version/model"
)

// 🔹 Request membuat versi lagu (aransemen) di bawah sebuah song
type SongVersionRequest struct {
	VersionName    string  `json:"version_name" validate:"required,min=1,max=100"`
	Classification string  `json:"classification" validate:"required,max=50"`
	Key            string  `json:"key" validate:"required,max=10"`
	LinkChord      *string `json:"link_chord" validate:"omitempty,url"`
	LinkVideo      *string `json:"link_video" validate:"omitempty,url"`
}

// 🔹 Request update parsial versi lagu
type SongVersionUpdateRequest struct {
	VersionName    *string `json:"version_name" validate:"omitempty,min=1,max=100"`
	Classification *string `json:"classification" validate:"omitempty,max=50"`
	Key            *string `json:"key" validate:"omitempty,max=10"`
	LinkChord      *string `json:"link_chord" validate:"omitempty,url"`
	LinkVideo      *string `json:"link_video" validate:"omitempty,url"`
}

// 🔹 Response versi lagu
type SongVersionResponse struct {
	ID             uuid.UUID `json:"id"`
	VersionName    string    `json:"version_name"`
	Classification string    `json:"classification"`
	Key            string    `json:"key"`
	LinkChord      *string   `json:"link_chord,omitempty"`
	LinkVideo      *string   `json:"link_video,omitempty"`
	SongID         uuid.UUID `json:"song_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// 🔄 Konversi request → model (song ditentukan dari path)
func (r *SongVersionRequest) ToModel(songID uuid.UUID) *model.SongVersionModel {
	return &model.SongVersionModel{
		VersionName:    r.VersionName,
		Classification: r.Classification,
		Key:            r.Key,
		LinkChord:      r.LinkChord,
		LinkVideo:      r.LinkVideo,
		SongID:         songID,
	}
}

// 🔄 Konversi model → response
func ToSongVersionResponse(m *model.SongVersionModel) *SongVersionResponse {
	return &SongVersionResponse{
		ID:             m.ID,
		VersionName:    m.VersionName,
		Classification: m.Classification,
		Key:            m.Key,
		LinkChord:      m.LinkChord,
		LinkVideo:      m.LinkVideo,
		SongID:         m.SongID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToSongVersionResponseList(models []model.SongVersionModel) []SongVersionResponse {
	result := make([]SongVersionResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToSongVersionResponse(&m))
	}
	return result
}
