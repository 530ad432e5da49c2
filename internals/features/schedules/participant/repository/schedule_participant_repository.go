package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	participantModel "pelayananku_backend/internals/features/schedules/participant/model"
)

func CreateParticipant(db *gorm.DB, participant *participantModel.ScheduleParticipantModel) error {
	return db.Create(participant).Error
}

func FindParticipantByID(db *gorm.DB, participantID uuid.UUID) (*participantModel.ScheduleParticipantModel, error) {
	var participant participantModel.ScheduleParticipantModel
	if err := db.First(&participant, "id = ?", participantID).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindParticipantScoped mencari participant dengan scope gabungan
// (schedule, participant, department); tenant lain tidak terlihat.
func FindParticipantScoped(db *gorm.DB, scheduleID, participantID, departmentID uuid.UUID) (*participantModel.ScheduleParticipantModel, error) {
	var participant participantModel.ScheduleParticipantModel
	if err := db.
		Preload("User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email", "role", "avatar_url", "department_id")
		}).
		Where("id = ? AND schedule_id = ? AND department_id = ?", participantID, scheduleID, departmentID).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func FindParticipantsByScheduleAndDepartment(db *gorm.DB, scheduleID, departmentID uuid.UUID) ([]participantModel.ScheduleParticipantModel, error) {
	var participants []participantModel.ScheduleParticipantModel
	if err := db.
		Preload("User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email", "role", "avatar_url", "department_id")
		}).
		Where("schedule_id = ? AND department_id = ?", scheduleID, departmentID).
		Order("created_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func UpdateParticipantStatus(db *gorm.DB, participantID uuid.UUID, status string) error {
	return db.Model(&participantModel.ScheduleParticipantModel{}).
		Where("id = ?", participantID).
		Update("status", status).Error
}

func DeleteParticipant(db *gorm.DB, participantID uuid.UUID) error {
	return db.Delete(&participantModel.ScheduleParticipantModel{}, "id = ?", participantID).Error
}
