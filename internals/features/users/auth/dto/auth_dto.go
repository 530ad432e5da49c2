package dto

import (
	"github.com/google/uuid"

	userDto "pelayananku_backend/internals/features/users/user/dto"
)

// 🔹 Request registrasi user baru
type RegisterRequest struct {
	Name         string     `json:"name" validate:"required,min=3,max=50"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=8"`
	Role         string     `json:"role" validate:"omitempty,oneof=ADMIN LEADER MEMBER"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// 🔹 Request login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// 🔹 Request setup awal (role + kode undangan), sekali seumur akun
type SetupRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=ADMIN LEADER MEMBER"`
	Code   string    `json:"code" validate:"required"`
}

// 🔹 Response register/login: user tersanitasi + bearer token
type AuthResponse struct {
	User  *userDto.UserResponse `json:"user"`
	Token string                `json:"token"`
}
