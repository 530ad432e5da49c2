// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pelayananku_backend/internals/configs"
	"pelayananku_backend/internals/constants"
	authDto "pelayananku_backend/internals/features/users/auth/dto"
	userDto "pelayananku_backend/internals/features/users/user/dto"
	userModel "pelayananku_backend/internals/features/users/user/model"
	userRepo "pelayananku_backend/internals/features/users/user/repository"
	helper "pelayananku_backend/internals/helpers"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// ========================== REGISTER ==========================
func (s *AuthService) Register(req *authDto.RegisterRequest) (*authDto.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &userModel.UserModel{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Role:         req.Role, // kosong → default MEMBER di BeforeCreate
		DepartmentID: req.DepartmentID,
	}

	// Keunikan email dijaga oleh unique index, bukan cek-dulu-insert
	if err := userRepo.CreateUser(s.DB, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.ErrConflict("User already exists")
		}
		log.Printf("[ERROR] Gagal menyimpan user: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to create user")
	}

	token, err := helper.SignAccessToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return &authDto.AuthResponse{User: userDto.ToUserResponse(user), Token: token}, nil
}

// ========================== LOGIN ==========================
// Pesan error sengaja generik: tidak membocorkan apakah email terdaftar.
func (s *AuthService) Login(req *authDto.LoginRequest) (*authDto.AuthResponse, error) {
	user, err := userRepo.FindUserByEmail(s.DB, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrUnauthorized("Invalid email or password")
		}
		log.Printf("[ERROR] Lookup user login: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, helper.ErrUnauthorized("Invalid email or password")
	}

	token, err := helper.SignAccessToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return &authDto.AuthResponse{User: userDto.ToUserResponse(user), Token: token}, nil
}

// ========================== SETUP ==========================
// Sekali seumur akun: kode undangan menentukan role final.
// Kode LEADER → LEADER, kode MEMBER → MEMBER; kode lain ditolak.
func (s *AuthService) Setup(req *authDto.SetupRequest) (*userDto.UserResponse, error) {
	user, err := userRepo.FindUserByID(s.DB, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("User not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if user.InitialSetupCompleted {
		return nil, helper.ErrConflict("Initial setup already completed")
	}

	if configs.SetupLeaderCode == "" || configs.SetupMemberCode == "" {
		log.Println("[ERROR] Kode setup belum dikonfigurasi")
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Setup codes not configured")
	}

	var resolvedRole string
	switch req.Code {
	case configs.SetupLeaderCode:
		resolvedRole = constants.RoleLeader
	case configs.SetupMemberCode:
		resolvedRole = constants.RoleMember
	default:
		// termasuk pasangan role/kode yang tidak cocok (mis. minta ADMIN)
		return nil, helper.ErrBadRequest("Invalid setup code")
	}

	if err := userRepo.CompleteSetup(s.DB, user.ID, resolvedRole); err != nil {
		log.Printf("[ERROR] Gagal menyimpan setup: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to complete setup")
	}

	user.Role = resolvedRole
	user.InitialSetupCompleted = true
	return userDto.ToUserResponse(user), nil
}
