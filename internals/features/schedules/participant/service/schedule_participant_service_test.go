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
	scheduleModel "pelayananku_backend/internals/features/schedules/schedule/model"
	userModel "pelayananku_backend/internals/features/users/user/model"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type fixture struct {
	db       *gorm.DB
	svc      *ScheduleParticipantService
	dept     *departmentModel.DepartmentModel
	schedule *scheduleModel.ScheduleModel
	user     *userModel.UserModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateAll(db))

	dept := &departmentModel.DepartmentModel{Name: "Tim Musik"}
	require.NoError(t, db.Create(dept).Error)

	schedule := &scheduleModel.ScheduleModel{
		Name:         "Ibadah Minggu Pagi",
		Date:         time.Date(2026, 9, 6, 9, 0, 0, 0, time.UTC),
		DepartmentID: dept.ID,
	}
	require.NoError(t, db.Create(schedule).Error)

	user := &userModel.UserModel{Name: "Anggota", Email: "anggota@example.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(user).Error)

	return &fixture{
		db:       db,
		svc:      NewScheduleParticipantService(db),
		dept:     dept,
		schedule: schedule,
		user:     user,
	}
}

func leaderActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: constants.RoleLeader}
}

func TestAddParticipant(t *testing.T) {
	f := newFixture(t)

	participants, err := f.svc.AddParticipant(leaderActor(), f.dept.ID, f.schedule.ID, f.user.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, participantModel.StatusPending, participants[0].Status)
	assert.Equal(t, f.user.ID, participants[0].UserID)
	require.NotNil(t, participants[0].User)
	assert.Equal(t, "Anggota", participants[0].User.Name)
}

func TestAddParticipantDuplicate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AddParticipant(leaderActor(), f.dept.ID, f.schedule.ID, f.user.ID)
	require.NoError(t, err)

	_, err = f.svc.AddParticipant(leaderActor(), f.dept.ID, f.schedule.ID, f.user.ID)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "Participant already exists in this schedule", appErr.Message)
}

func TestAddParticipantScheduleOutsideDepartment(t *testing.T) {
	f := newFixture(t)

	other := &departmentModel.DepartmentModel{Name: "Tim Multimedia"}
	require.NoError(t, f.db.Create(other).Error)

	_, err := f.svc.AddParticipant(leaderActor(), other.ID, f.schedule.ID, f.user.ID)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Schedule not found", appErr.Message)
}

func TestUpdateStatusConfirm(t *testing.T) {
	f := newFixture(t)

	participants, err := f.svc.AddParticipant(leaderActor(), f.dept.ID, f.schedule.ID, f.user.ID)
	require.NoError(t, err)
	participantID := participants[0].ID

	require.NoError(t, f.svc.UpdateStatus(leaderActor(), f.dept.ID, f.schedule.ID, participantID, participantModel.StatusConfirmed))

	found, err := f.svc.FindParticipantByID(f.dept.ID, f.schedule.ID, participantID)
	require.NoError(t, err)
	assert.Equal(t, participantModel.StatusConfirmed, found.Status)

	// balik ke PENDING juga sah
	require.NoError(t, f.svc.UpdateStatus(leaderActor(), f.dept.ID, f.schedule.ID, participantID, participantModel.StatusPending))
}

func TestUpdateStatusInvalidValueNoMutation(t *testing.T) {
	f := newFixture(t)

	participants, err := f.svc.AddParticipant(leaderActor(), f.dept.ID, f.schedule.ID, f.user.ID)
	require.NoError(t, err)
	participantID := participants[0].ID

	err = f.svc.UpdateStatus(leaderActor(), f.dept.ID, f.schedule.ID, participantID, "MAYBE")
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Invalid status", appErr.Message)

	found, err := f.svc.FindParticipantByID(f.dept.ID, f.schedule.ID, participantID)
	require.NoError(t, err)
	assert.Equal(t, participantModel.StatusPending, found.Status)
}

func TestUpdateStatusWrongScope(t *testing.T) {
	f := newFixture(t)

	participants, err := f.svc.AddParticipant(leaderActor(), f.dept.ID, f.schedule.ID, f.user.ID)
	require.NoError(t, err)
	participantID := participants[0].ID

	other := &departmentModel.DepartmentModel{Name: "Tim Multimedia"}
	require.NoError(t, f.db.Create(other).Error)
	otherSchedule := &scheduleModel.ScheduleModel{
		Name:         "Latihan",
		Date:         time.Now(),
		DepartmentID: other.ID,
	}
	require.NoError(t, f.db.Create(otherSchedule).Error)

	err = f.svc.UpdateStatus(leaderActor(), other.ID, otherSchedule.ID, participantID, participantModel.StatusConfirmed)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Participant not found in the specified department", appErr.Message)
}

func TestRemoveParticipant(t *testing.T) {
	f := newFixture(t)

	participants, err := f.svc.AddParticipant(leaderActor(), f.dept.ID, f.schedule.ID, f.user.ID)
	require.NoError(t, err)
	participantID := participants[0].ID

	require.NoError(t, f.svc.RemoveParticipant(leaderActor(), f.dept.ID, participantID))

	err = f.svc.RemoveParticipant(leaderActor(), f.dept.ID, participantID)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Participant not found", appErr.Message)
}

func TestRemoveParticipantCrossDepartment(t *testing.T) {
	f := newFixture(t)

	participants, err := f.svc.AddParticipant(leaderActor(), f.dept.ID, f.schedule.ID, f.user.ID)
	require.NoError(t, err)
	participantID := participants[0].ID

	other := &departmentModel.DepartmentModel{Name: "Tim Multimedia"}
	require.NoError(t, f.db.Create(other).Error)

	err = f.svc.RemoveParticipant(leaderActor(), other.ID, participantID)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Participant is not associated with this schedule in the specified department", appErr.Message)
}

func TestParticipantMutationForbiddenForMember(t *testing.T) {
	f := newFixture(t)
	member := authz.Actor{ID: uuid.New(), Role: constants.RoleMember}

	_, err := f.svc.AddParticipant(member, f.dept.ID, f.schedule.ID, f.user.ID)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, "Permission denied", appErr.Message)
}
