package database

import (
	"log"

	"gorm.io/gorm"

	departmentModel "pelayananku_backend/internals/features/departments/department/model"
	participantModel "pelayananku_backend/internals/features/schedules/participant/model"
	scheduleModel "pelayananku_backend/internals/features/schedules/schedule/model"
	songModel "pelayananku_backend/internals/features/songs/song/model"
	songVersionModel "pelayananku_backend/internals/features/songs/song_version/model"
	userModel "pelayananku_backend/internals/features/users/user/model"
)

// MigrateAll menjalankan AutoMigrate untuk semua tabel domain.
// Urutan mengikuti dependensi FK: department → user → schedule → participant → song → version.
func MigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&departmentModel.DepartmentModel{},
		&userModel.UserModel{},
		&scheduleModel.ScheduleModel{},
		&participantModel.ScheduleParticipantModel{},
		&songModel.SongModel{},
		&songVersionModel.SongVersionModel{},
	); err != nil {
		log.Printf("[ERROR] AutoMigrate gagal: %v", err)
		return err
	}
	log.Println("✅ AutoMigrate selesai.")
	return nil
}
