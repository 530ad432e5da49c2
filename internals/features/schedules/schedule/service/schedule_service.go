package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	departmentRepo "pelayananku_backend/internals/features/departments/department/repository"
	scheduleDto "pelayananku_backend/internals/features/schedules/schedule/dto"
	scheduleRepo "pelayananku_backend/internals/features/schedules/schedule/repository"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

func (s *ScheduleService) Create(actor authz.Actor, departmentID uuid.UUID, req *scheduleDto.ScheduleRequest) (*scheduleDto.ScheduleResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionScheduleManage, nil); appErr != nil {
		return nil, appErr
	}

	if _, err := departmentRepo.FindDepartmentByID(s.DB, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Department not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	schedule := req.ToModel(departmentID)
	if err := scheduleRepo.CreateSchedule(s.DB, schedule); err != nil {
		log.Printf("[ERROR] Gagal menyimpan schedule: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to create schedule")
	}

	return scheduleDto.ToScheduleResponse(schedule), nil
}

func (s *ScheduleService) FindAll(departmentID uuid.UUID) ([]scheduleDto.ScheduleResponse, error) {
	if _, err := departmentRepo.FindDepartmentByID(s.DB, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Department not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	schedules, err := scheduleRepo.FindSchedulesByDepartment(s.DB, departmentID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar schedule: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to fetch schedules")
	}
	return scheduleDto.ToScheduleResponseList(schedules), nil
}

func (s *ScheduleService) FindBySchedule(departmentID, scheduleID uuid.UUID) (*scheduleDto.ScheduleResponse, error) {
	schedule, err := scheduleRepo.FindScheduleInDepartment(s.DB, departmentID, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Schedule not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return scheduleDto.ToScheduleResponse(schedule), nil
}

// Update: Time opsional ("15:04") digabung ke hari kalender tanggal jadwal.
func (s *ScheduleService) Update(actor authz.Actor, departmentID, scheduleID uuid.UUID, req *scheduleDto.ScheduleUpdateRequest) (*scheduleDto.ScheduleResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionScheduleManage, nil); appErr != nil {
		return nil, appErr
	}

	if _, err := departmentRepo.FindDepartmentByID(s.DB, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Department not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	schedule, err := scheduleRepo.FindScheduleInDepartment(s.DB, departmentID, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Schedule not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	date := schedule.Date
	dateChanged := false
	if req.Date != nil {
		date = *req.Date
		dateChanged = true
	}
	if req.Time != nil {
		clock, err := time.Parse("15:04", *req.Time)
		if err != nil {
			return nil, helper.ErrBadRequest("Invalid time format, expected HH:MM")
		}
		date = time.Date(date.Year(), date.Month(), date.Day(),
			clock.Hour(), clock.Minute(), 0, 0, date.Location())
		dateChanged = true
	}
	if dateChanged {
		updates["date"] = date
	}

	if len(updates) == 0 {
		return nil, helper.ErrBadRequest("Tidak ada field yang diupdate")
	}

	if err := scheduleRepo.UpdateSchedule(s.DB, scheduleID, updates); err != nil {
		log.Printf("[ERROR] Gagal memperbarui schedule: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to update schedule")
	}

	schedule, err = scheduleRepo.FindScheduleInDepartment(s.DB, departmentID, scheduleID)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return scheduleDto.ToScheduleResponse(schedule), nil
}

// Delete: participant dihapus dulu, lalu schedule-nya (satu transaksi).
func (s *ScheduleService) Delete(actor authz.Actor, departmentID, scheduleID uuid.UUID) error {
	if appErr := authz.Authorize(actor, authz.ActionScheduleManage, nil); appErr != nil {
		return appErr
	}

	if _, err := departmentRepo.FindDepartmentByID(s.DB, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Department not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	if _, err := scheduleRepo.FindScheduleInDepartment(s.DB, departmentID, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Schedule not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := scheduleRepo.DeleteScheduleWithParticipants(s.DB, scheduleID); err != nil {
		log.Printf("[ERROR] Gagal menghapus schedule: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	return nil
}
