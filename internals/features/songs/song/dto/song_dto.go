package dto

import (
	"time"

	"github.com/google/uuid"

	"pelayananku_backend/internals/features/songs/song/model"
	versionDto "pelayananku_backend/internals/features/songs/song_version/dto"
)

// 🔹 Request membuat lagu
type SongRequest struct {
	Title      string     `json:"title" validate:"required,min=1,max=150"`
	Artist     string     `json:"artist" validate:"required,min=1,max=100"`
	Genre      *string    `json:"genre" validate:"omitempty,max=50"`
	ScheduleID *uuid.UUID `json:"schedule_id"`
}

// 🔹 Request update parsial lagu
type SongUpdateRequest struct {
	Title      *string    `json:"title" validate:"omitempty,min=1,max=150"`
	Artist     *string    `json:"artist" validate:"omitempty,min=1,max=100"`
	Genre      *string    `json:"genre" validate:"omitempty,max=50"`
	ScheduleID *uuid.UUID `json:"schedule_id"`
}

// 🔹 Response lagu
type SongResponse struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Artist     string     `json:"artist"`
	Genre      *string    `json:"genre,omitempty"`
	ScheduleID *uuid.UUID `json:"schedule_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// 🔹 Response detail lagu + versi-versinya
type SongDetailResponse struct {
	SongResponse
	Versions []versionDto.SongVersionResponse `json:"versions"`
}

// 🔄 Konversi request → model
func (r *SongRequest) ToModel() *model.SongModel {
	return &model.SongModel{
		Title:      r.Title,
		Artist:     r.Artist,
		Genre:      r.Genre,
		ScheduleID: r.ScheduleID,
	}
}

// 🔄 Konversi model → response
func ToSongResponse(m *model.SongModel) *SongResponse {
	return &SongResponse{
		ID:         m.ID,
		Title:      m.Title,
		Artist:     m.Artist,
		Genre:      m.Genre,
		ScheduleID: m.ScheduleID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToSongDetailResponse(m *model.SongModel) *SongDetailResponse {
	return &SongDetailResponse{
		SongResponse: *ToSongResponse(m),
		Versions:     versionDto.ToSongVersionResponseList(m.Versions),
	}
}

func ToSongResponseList(models []model.SongModel) []SongResponse {
	result := make([]SongResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToSongResponse(&m))
	}
	return result
}
