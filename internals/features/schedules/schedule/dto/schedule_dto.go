package dto

import (
	"time"

	"github.com/google/uuid"

	participantDto "pelayananku_backend/internals/features/schedules/participant/dto"
	"pelayananku_backend/internals/features/schedules/schedule/model"
	songDto "pelayananku_backend/internals/features/songs/song/dto"
)

// 🔹 Request membuat schedule
type ScheduleRequest struct {
	Name string    `json:"name" validate:"required,min=3,max=100"`
	Date time.Time `json:"date" validate:"required"`
}

// 🔹 Request update parsial schedule.
// Time opsional ("15:04"): jam-menit digabung ke hari kalender Date.
type ScheduleUpdateRequest struct {
	Name *string    `json:"name" validate:"omitempty,min=3,max=100"`
	Date *time.Time `json:"date"`
	Time *string    `json:"time" validate:"omitempty,datetime=15:04"`
}

// 🔹 Response schedule + nested participant & lagu
type ScheduleResponse struct {
	ID           uuid.UUID                            `json:"id"`
	Name         string                               `json:"name"`
	Date         time.Time                            `json:"date"`
	DepartmentID uuid.UUID                            `json:"department_id"`
	Participants []participantDto.ParticipantResponse `json:"participants"`
	Songs        []songDto.SongResponse               `json:"songs"`
	CreatedAt    time.Time                            `json:"created_at"`
	UpdatedAt    time.Time                            `json:"updated_at"`
}

// 🔄 Konversi request → model (department dari path)
func (r *ScheduleRequest) ToModel(departmentID uuid.UUID) *model.ScheduleModel {
	return &model.ScheduleModel{
		Name:         r.Name,
		Date:         r.Date,
		DepartmentID: departmentID,
	}
}

// 🔄 Konversi model → response
func ToScheduleResponse(m *model.ScheduleModel) *ScheduleResponse {
	return &ScheduleResponse{
		ID:           m.ID,
		Name:         m.Name,
		Date:         m.Date,
		DepartmentID: m.DepartmentID,
		Participants: participantDto.ToParticipantResponseList(m.Participants),
		Songs:        songDto.ToSongResponseList(m.Songs),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToScheduleResponseList(models []model.ScheduleModel) []ScheduleResponse {
	result := make([]ScheduleResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToScheduleResponse(&m))
	}
	return result
}
