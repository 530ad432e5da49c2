package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	participantModel "pelayananku_backend/internals/features/schedules/participant/model"
	scheduleModel "pelayananku_backend/internals/features/schedules/schedule/model"
)

func CreateSchedule(db *gorm.DB, schedule *scheduleModel.ScheduleModel) error {
	return db.Create(schedule).Error
}

// FindSchedulesByDepartment memuat seluruh jadwal sebuah department
// beserta participant (plus ringkasan user) dan lagu-lagunya.
func FindSchedulesByDepartment(db *gorm.DB, departmentID uuid.UUID) ([]scheduleModel.ScheduleModel, error) {
	var schedules []scheduleModel.ScheduleModel
	if err := db.
		Preload("Participants").
		Preload("Participants.User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email", "role", "avatar_url", "department_id")
		}).
		Preload("Songs").
		Where("department_id = ?", departmentID).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindScheduleInDepartment: lookup ter-scope department (cross-tenant = not found)
func FindScheduleInDepartment(db *gorm.DB, departmentID, scheduleID uuid.UUID) (*scheduleModel.ScheduleModel, error) {
	var schedule scheduleModel.ScheduleModel
	if err := db.
		Preload("Participants").
		Preload("Participants.User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email", "role", "avatar_url", "department_id")
		}).
		Preload("Songs").
		Where("id = ? AND department_id = ?", scheduleID, departmentID).
		First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func UpdateSchedule(db *gorm.DB, scheduleID uuid.UUID, updates map[string]interface{}) error {
	return db.Model(&scheduleModel.ScheduleModel{}).
		Where("id = ?", scheduleID).
		Updates(updates).Error
}

// DeleteScheduleWithParticipants menghapus participant lalu schedule
// dalam satu transaksi supaya tidak ada baris yatim saat gagal di tengah.
func DeleteScheduleWithParticipants(db *gorm.DB, scheduleID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&participantModel.ScheduleParticipantModel{}, "schedule_id = ?", scheduleID).Error; err != nil {
			return err
		}
		return tx.Delete(&scheduleModel.ScheduleModel{}, "id = ?", scheduleID).Error
	})
}
