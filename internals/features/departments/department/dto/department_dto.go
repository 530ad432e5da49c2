package dto

import (
	"time"

	"github.com/google/uuid"

	"pelayananku_backend/internals/features/departments/department/model"
	userDto "pelayananku_backend/internals/features/users/user/dto"
)

// 🔹 Request membuat department
type DepartmentRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// 🔹 Request update parsial department
type DepartmentUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// 🔹 Response department
type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// 🔹 Response department + ringkasan anggota
type DepartmentDetailResponse struct {
	DepartmentResponse
	Users []userDto.UserSummary `json:"users"`
}

// 🔄 Konversi request → model
func (r *DepartmentRequest) ToModel() *model.DepartmentModel {
	return &model.DepartmentModel{
		Name:        r.Name,
		Description: r.Description,
	}
}

// 🔄 Konversi model → response
func ToDepartmentResponse(m *model.DepartmentModel) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToDepartmentDetailResponse(m *model.DepartmentModel) *DepartmentDetailResponse {
	return &DepartmentDetailResponse{
		DepartmentResponse: *ToDepartmentResponse(m),
		Users:              userDto.ToUserSummaryList(m.Users),
	}
}

func ToDepartmentDetailResponseList(models []model.DepartmentModel) []DepartmentDetailResponse {
	result := make([]DepartmentDetailResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToDepartmentDetailResponse(&m))
	}
	return result
}
