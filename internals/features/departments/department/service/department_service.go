package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pelayananku_backend/internals/constants"
	departmentDto "pelayananku_backend/internals/features/departments/department/dto"
	departmentRepo "pelayananku_backend/internals/features/departments/department/repository"
	userRepo "pelayananku_backend/internals/features/users/user/repository"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type DepartmentService struct {
	DB *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{DB: db}
}

// Create: requester jadi anggota pertama department yang dia buat.
func (s *DepartmentService) Create(actor authz.Actor, req *departmentDto.DepartmentRequest) (*departmentDto.DepartmentResponse, error) {
	requester, err := userRepo.FindUserByID(s.DB, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrUnauthorized("Unauthorized")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	actor.Role = requester.Role
	actor.DepartmentID = requester.DepartmentID
	if appErr := authz.Authorize(actor, authz.ActionDepartmentCreate, nil); appErr != nil {
		return nil, appErr
	}

	if requester.DepartmentID != nil {
		return nil, helper.ErrConflict("User is already in a department")
	}

	department := req.ToModel()
	if err := departmentRepo.CreateDepartment(s.DB, department); err != nil {
		log.Printf("[ERROR] Gagal menyimpan department: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to create department")
	}

	if err := userRepo.SetDepartment(s.DB, requester.ID, &department.ID); err != nil {
		log.Printf("[ERROR] Gagal memasang department requester: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to join department")
	}

	return departmentDto.ToDepartmentResponse(department), nil
}

func (s *DepartmentService) Update(actor authz.Actor, departmentID uuid.UUID, req *departmentDto.DepartmentUpdateRequest) (*departmentDto.DepartmentResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionDepartmentUpdate, nil); appErr != nil {
		return nil, appErr
	}

	if _, err := departmentRepo.FindDepartmentByID(s.DB, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Department not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil, helper.ErrBadRequest("Tidak ada field yang diupdate")
	}

	if err := departmentRepo.UpdateDepartment(s.DB, departmentID, updates); err != nil {
		log.Printf("[ERROR] Gagal memperbarui department: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to update department")
	}

	department, err := departmentRepo.FindDepartmentByID(s.DB, departmentID)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return departmentDto.ToDepartmentResponse(department), nil
}

// FindAll: ADMIN/LEADER melihat semua; MEMBER hanya department miliknya.
func (s *DepartmentService) FindAll(actor authz.Actor) ([]departmentDto.DepartmentDetailResponse, error) {
	if actor.Role == constants.RoleAdmin || actor.Role == constants.RoleLeader {
		departments, err := departmentRepo.FindAllDepartments(s.DB)
		if err != nil {
			log.Printf("[ERROR] Gagal mengambil daftar department: %v", err)
			return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to fetch departments")
		}
		return departmentDto.ToDepartmentDetailResponseList(departments), nil
	}

	// MEMBER: nol atau satu hasil
	requester, err := userRepo.FindUserByID(s.DB, actor.ID)
	if err != nil || requester.DepartmentID == nil {
		return []departmentDto.DepartmentDetailResponse{}, nil
	}
	department, err := departmentRepo.FindDepartmentWithUsers(s.DB, *requester.DepartmentID)
	if err != nil {
		return []departmentDto.DepartmentDetailResponse{}, nil
	}
	return []departmentDto.DepartmentDetailResponse{*departmentDto.ToDepartmentDetailResponse(department)}, nil
}

func (s *DepartmentService) FindByID(departmentID uuid.UUID) (*departmentDto.DepartmentDetailResponse, error) {
	department, err := departmentRepo.FindDepartmentWithUsers(s.DB, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Department not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return departmentDto.ToDepartmentDetailResponse(department), nil
}

func (s *DepartmentService) Delete(actor authz.Actor, departmentID uuid.UUID) error {
	if _, err := departmentRepo.FindDepartmentByID(s.DB, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Department not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if appErr := authz.Authorize(actor, authz.ActionDepartmentDelete, nil); appErr != nil {
		return appErr
	}

	if err := departmentRepo.DeleteDepartment(s.DB, departmentID); err != nil {
		log.Printf("[ERROR] Gagal menghapus department: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to delete department")
	}
	return nil
}

// AddUser: idempoten, memasang ulang department yang sama bukan error.
func (s *DepartmentService) AddUser(actor authz.Actor, departmentID, userID uuid.UUID) error {
	if appErr := authz.Authorize(actor, authz.ActionDepartmentMembers, nil); appErr != nil {
		return appErr
	}

	if _, err := departmentRepo.FindDepartmentByID(s.DB, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Department not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	if _, err := userRepo.FindUserByID(s.DB, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("User not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := userRepo.SetDepartment(s.DB, userID, &departmentID); err != nil {
		log.Printf("[ERROR] Gagal menambah user ke department: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to add user to department")
	}
	return nil
}

// RemoveUser: idempoten, melepas user yang bukan anggota adalah no-op.
func (s *DepartmentService) RemoveUser(actor authz.Actor, departmentID, userID uuid.UUID) error {
	if appErr := authz.Authorize(actor, authz.ActionDepartmentMembers, nil); appErr != nil {
		return appErr
	}

	if _, err := departmentRepo.FindDepartmentByID(s.DB, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Department not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	user, err := userRepo.FindUserByID(s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("User not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if user.DepartmentID == nil || *user.DepartmentID != departmentID {
		return nil
	}

	if err := userRepo.SetDepartment(s.DB, userID, nil); err != nil {
		log.Printf("[ERROR] Gagal melepas user dari department: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to remove user from department")
	}
	return nil
}
