package dto

import (
	"time"

	"github.com/google/uuid"

	"pelayananku_backend/internals/features/users/user/model"
)

// 🔹 Response user yang sudah disanitasi (tanpa password hash)
type UserResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	Role                  string     `json:"role"`
	AvatarURL             *string    `json:"avatar_url,omitempty"`
	InitialSetupCompleted bool       `json:"initial_setup_completed"`
	DepartmentID          *uuid.UUID `json:"department_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// 🔹 Ringkasan user untuk nested response (department detail, participant)
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}

// 🔹 Request update parsial user
type UserUpdateRequest struct {
	Name         *string    `json:"name" validate:"omitempty,min=3,max=50"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	Password     *string    `json:"password" validate:"omitempty,min=8"`
	AvatarURL    *string    `json:"avatar_url" validate:"omitempty,max=255"`
	Role         *string    `json:"role" validate:"omitempty,oneof=ADMIN LEADER MEMBER"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// 🔄 Konversi model → response
func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:                    m.ID,
		Name:                  m.Name,
		Email:                 m.Email,
		Role:                  m.Role,
		AvatarURL:             m.AvatarURL,
		InitialSetupCompleted: m.InitialSetupCompleted,
		DepartmentID:          m.DepartmentID,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	result := make([]UserResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToUserResponse(&m))
	}
	return result
}

func ToUserSummary(m *model.UserModel) *UserSummary {
	return &UserSummary{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		AvatarURL: m.AvatarURL,
	}
}

func ToUserSummaryList(models []model.UserModel) []UserSummary {
	result := make([]UserSummary, 0, len(models))
	for _, m := range models {
		result = append(result, *ToUserSummary(&m))
	}
	return result
}
