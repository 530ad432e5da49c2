package service

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDto "pelayananku_backend/internals/features/users/user/dto"
	userRepo "pelayananku_backend/internals/features/users/user/repository"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) FindAll() ([]userDto.UserResponse, error) {
	users, err := userRepo.FindAllUsers(s.DB)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar user: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return userDto.ToUserResponseList(users), nil
}

func (s *UserService) FindByID(userID uuid.UUID) (*userDto.UserResponse, error) {
	user, err := userRepo.FindUserByID(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("User not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return userDto.ToUserResponse(user), nil
}

func (s *UserService) Update(actor authz.Actor, userID uuid.UUID, req *userDto.UserUpdateRequest) (*userDto.UserResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionUserUpdate, &authz.Resource{OwnerID: userID}); appErr != nil {
		return nil, appErr
	}

	if _, err := userRepo.FindUserByID(s.DB, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("User not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to hash password")
		}
		updates["password_hash"] = string(hashed)
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.DepartmentID != nil {
		updates["department_id"] = *req.DepartmentID
	}

	if len(updates) == 0 {
		return nil, helper.ErrBadRequest("Tidak ada field yang diupdate")
	}

	if err := userRepo.UpdateUser(s.DB, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.ErrConflict("User already exists")
		}
		log.Printf("[ERROR] Gagal memperbarui user: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to update user")
	}

	user, err := userRepo.FindUserByID(s.DB, userID)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return userDto.ToUserResponse(user), nil
}

func (s *UserService) Delete(actor authz.Actor, userID uuid.UUID) error {
	if _, err := userRepo.FindUserByID(s.DB, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("User not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if appErr := authz.Authorize(actor, authz.ActionUserDelete, &authz.Resource{OwnerID: userID}); appErr != nil {
		return appErr
	}

	if err := userRepo.DeleteUser(s.DB, userID); err != nil {
		log.Printf("[ERROR] Gagal menghapus user: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	return nil
}
