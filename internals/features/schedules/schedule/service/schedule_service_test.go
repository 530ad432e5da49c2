package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pelayananku_backend/internals/constants"
	database "pelayananku_backend/internals/databases"
	departmentModel "pelayananku_backend/internals/features/departments/department/model"
	participantModel "pelayananku_backend/internals/features/schedules/participant/model"
	scheduleDto "pelayananku_backend/internals/features/schedules/schedule/dto"
	userModel "pelayananku_backend/internals/features/users/user/model"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateAll(db))
	return db
}

func seedDepartment(t *testing.T, db *gorm.DB, name string) *departmentModel.DepartmentModel {
	t.Helper()
	dept := &departmentModel.DepartmentModel{Name: name}
	require.NoError(t, db.Create(dept).Error)
	return dept
}

func leaderActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: constants.RoleLeader}
}

func TestCreateSchedule(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)
	dept := seedDepartment(t, db, "Tim Musik")

	date := time.Date(2026, 9, 6, 9, 0, 0, 0, time.UTC)
	resp, err := svc.Create(leaderActor(), dept.ID, &scheduleDto.ScheduleRequest{
		Name: "Ibadah Minggu Pagi",
		Date: date,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ibadah Minggu Pagi", resp.Name)
	assert.Equal(t, dept.ID, resp.DepartmentID)
	assert.True(t, resp.Date.Equal(date))
}

func TestCreateScheduleUnknownDepartment(t *testing.T) {
	svc := NewScheduleService(setupTestDB(t))

	_, err := svc.Create(leaderActor(), uuid.New(), &scheduleDto.ScheduleRequest{
		Name: "Ibadah Minggu Pagi",
		Date: time.Now(),
	})
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Department not found", appErr.Message)
}

// Schedule milik department lain tidak boleh terlihat lewat scope
// department yang berbeda.
func TestFindByScheduleScopedToDepartment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)
	deptA := seedDepartment(t, db, "Tim Musik")
	deptB := seedDepartment(t, db, "Tim Multimedia")

	created, err := svc.Create(leaderActor(), deptA.ID, &scheduleDto.ScheduleRequest{
		Name: "Ibadah Minggu Pagi",
		Date: time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.FindBySchedule(deptB.ID, created.ID)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Schedule not found", appErr.Message)

	found, err := svc.FindBySchedule(deptA.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

// Time opsional "HH:MM" digabung ke hari kalender tanggal jadwal.
func TestUpdateScheduleMergesClockIntoDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)
	dept := seedDepartment(t, db, "Tim Musik")

	created, err := svc.Create(leaderActor(), dept.ID, &scheduleDto.ScheduleRequest{
		Name: "Ibadah Minggu Pagi",
		Date: time.Date(2026, 9, 6, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	clock := "17:30"
	updated, err := svc.Update(leaderActor(), dept.ID, created.ID, &scheduleDto.ScheduleUpdateRequest{
		Time: &clock,
	})
	require.NoError(t, err)
	assert.Equal(t, 2026, updated.Date.Year())
	assert.Equal(t, time.September, updated.Date.Month())
	assert.Equal(t, 6, updated.Date.Day())
	assert.Equal(t, 17, updated.Date.Hour())
	assert.Equal(t, 30, updated.Date.Minute())
}

func TestUpdateScheduleNoFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)
	dept := seedDepartment(t, db, "Tim Musik")

	created, err := svc.Create(leaderActor(), dept.ID, &scheduleDto.ScheduleRequest{
		Name: "Ibadah Minggu Pagi",
		Date: time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.Update(leaderActor(), dept.ID, created.ID, &scheduleDto.ScheduleUpdateRequest{})
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

// Menghapus schedule ikut menghapus participant-nya dalam satu transaksi.
func TestDeleteScheduleCascadesParticipants(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)
	dept := seedDepartment(t, db, "Tim Musik")

	created, err := svc.Create(leaderActor(), dept.ID, &scheduleDto.ScheduleRequest{
		Name: "Ibadah Minggu Pagi",
		Date: time.Now(),
	})
	require.NoError(t, err)

	user := &userModel.UserModel{Name: "Anggota", Email: "anggota@example.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&participantModel.ScheduleParticipantModel{
		ScheduleID:   created.ID,
		UserID:       user.ID,
		DepartmentID: dept.ID,
	}).Error)

	require.NoError(t, svc.Delete(leaderActor(), dept.ID, created.ID))

	var count int64
	require.NoError(t, db.Model(&participantModel.ScheduleParticipantModel{}).
		Where("schedule_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestScheduleMutationForbiddenForMember(t *testing.T) {
	db := setupTestDB(t)
	svc := NewScheduleService(db)
	dept := seedDepartment(t, db, "Tim Musik")
	member := authz.Actor{ID: uuid.New(), Role: constants.RoleMember}

	_, err := svc.Create(member, dept.ID, &scheduleDto.ScheduleRequest{
		Name: "Ibadah Minggu Pagi",
		Date: time.Now(),
	})
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, "Permission denied", appErr.Message)
}
