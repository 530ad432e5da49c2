package dto

import (
	"time"

	"github.com/google/uuid"

	"pelayananku_backend/internals/features/schedules/participant/model"
	userDto "pelayananku_backend/internals/features/users/user/dto"
)

// 🔹 Request menambah participant ke sebuah schedule
type AddParticipantRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// 🔹 Request ganti status undangan
type UpdateParticipantStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// 🔹 Response participant (status + ringkasan user)
type ParticipantResponse struct {
	ID           uuid.UUID            `json:"id"`
	ScheduleID   uuid.UUID            `json:"schedule_id"`
	UserID       uuid.UUID            `json:"user_id"`
	DepartmentID uuid.UUID            `json:"department_id"`
	Status       string               `json:"status"`
	User         *userDto.UserSummary `json:"user,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// 🔄 Konversi model → response
func ToParticipantResponse(m *model.ScheduleParticipantModel) *ParticipantResponse {
	resp := &ParticipantResponse{
		ID:           m.ID,
		ScheduleID:   m.ScheduleID,
		UserID:       m.UserID,
		DepartmentID: m.DepartmentID,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.User.ID != uuid.Nil {
		resp.User = userDto.ToUserSummary(&m.User)
	}
	return resp
}

func ToParticipantResponseList(models []model.ScheduleParticipantModel) []ParticipantResponse {
	result := make([]ParticipantResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToParticipantResponse(&m))
	}
	return result
}
