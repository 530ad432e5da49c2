// internals/features/schedules/participant/service/schedule_participant_service.go
package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	participantDto "pelayananku_backend/internals/features/schedules/participant/dto"
	participantModel "pelayananku_backend/internals/features/schedules/participant/model"
	participantRepo "pelayananku_backend/internals/features/schedules/participant/repository"
	scheduleRepo "pelayananku_backend/internals/features/schedules/schedule/repository"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type ScheduleParticipantService struct {
	DB *gorm.DB
}

func NewScheduleParticipantService(db *gorm.DB) *ScheduleParticipantService {
	return &ScheduleParticipantService{DB: db}
}

// resolveSchedule menegakkan invariant scoping department satu kali
// untuk semua method: schedule harus milik department yang diminta.
func (s *ScheduleParticipantService) resolveSchedule(departmentID, scheduleID uuid.UUID) error {
	if _, err := scheduleRepo.FindScheduleInDepartment(s.DB, departmentID, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Schedule not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return nil
}

// AddParticipant: insert langsung; duplikasi (user, schedule) ditolak
// oleh unique index dan diterjemahkan jadi 409.
func (s *ScheduleParticipantService) AddParticipant(actor authz.Actor, departmentID, scheduleID, userID uuid.UUID) ([]participantDto.ParticipantResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionParticipantManage, nil); appErr != nil {
		return nil, appErr
	}
	if err := s.resolveSchedule(departmentID, scheduleID); err != nil {
		return nil, err
	}

	participant := &participantModel.ScheduleParticipantModel{
		ScheduleID:   scheduleID,
		UserID:       userID,
		DepartmentID: departmentID,
		Status:       participantModel.StatusPending,
	}
	if err := participantRepo.CreateParticipant(s.DB, participant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.ErrConflict("Participant already exists in this schedule")
		}
		log.Printf("[ERROR] Gagal menambah participant: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to add participant")
	}

	participants, err := participantRepo.FindParticipantsByScheduleAndDepartment(s.DB, scheduleID, departmentID)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return participantDto.ToParticipantResponseList(participants), nil
}

func (s *ScheduleParticipantService) RemoveParticipant(actor authz.Actor, departmentID, participantID uuid.UUID) error {
	if appErr := authz.Authorize(actor, authz.ActionParticipantManage, nil); appErr != nil {
		return appErr
	}

	participant, err := participantRepo.FindParticipantByID(s.DB, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Participant not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	// penjaga cross-department: baris milik tenant lain = not found
	if participant.DepartmentID != departmentID {
		return helper.ErrNotFound("Participant is not associated with this schedule in the specified department")
	}

	if err := participantRepo.DeleteParticipant(s.DB, participantID); err != nil {
		log.Printf("[ERROR] Gagal menghapus participant: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to remove participant")
	}
	return nil
}

// UpdateStatus: status bebas berpindah antar tiga nilai yang dikenal
// (termasuk balik ke PENDING); di luar itu 400 tanpa mutasi.
func (s *ScheduleParticipantService) UpdateStatus(actor authz.Actor, departmentID, scheduleID, participantID uuid.UUID, status string) error {
	if appErr := authz.Authorize(actor, authz.ActionParticipantManage, nil); appErr != nil {
		return appErr
	}

	if !participantModel.ValidStatus(status) {
		return helper.ErrBadRequest("Invalid status")
	}

	if _, err := participantRepo.FindParticipantScoped(s.DB, scheduleID, participantID, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Participant not found in the specified department")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := participantRepo.UpdateParticipantStatus(s.DB, participantID, status); err != nil {
		log.Printf("[ERROR] Gagal memperbarui status participant: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to update participant status")
	}
	return nil
}

func (s *ScheduleParticipantService) ListParticipants(departmentID, scheduleID uuid.UUID) ([]participantDto.ParticipantResponse, error) {
	if err := s.resolveSchedule(departmentID, scheduleID); err != nil {
		return nil, err
	}

	participants, err := participantRepo.FindParticipantsByScheduleAndDepartment(s.DB, scheduleID, departmentID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar participant: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to fetch participants")
	}
	return participantDto.ToParticipantResponseList(participants), nil
}

func (s *ScheduleParticipantService) FindParticipantByID(departmentID, scheduleID, participantID uuid.UUID) (*participantDto.ParticipantResponse, error) {
	participant, err := participantRepo.FindParticipantScoped(s.DB, scheduleID, participantID, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Participant not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return participantDto.ToParticipantResponse(participant), nil
}
