package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pelayananku_backend/internals/constants"
	database "pelayananku_backend/internals/databases"
	userDto "pelayananku_backend/internals/features/users/user/dto"
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

func seedUser(t *testing.T, db *gorm.DB, email, role string) *userModel.UserModel {
	t.Helper()
	user := &userModel.UserModel{
		Name:         "User " + email,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestFindAllSanitized(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "a@example.com", constants.RoleMember)
	seedUser(t, db, "b@example.com", constants.RoleLeader)

	users, err := svc.FindAll()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := seedUser(t, db, "a@example.com", constants.RoleMember)

	name := "Nama Baru"
	updated, err := svc.Update(
		authz.Actor{ID: user.ID, Role: constants.RoleMember},
		user.ID,
		&userDto.UserUpdateRequest{Name: &name},
	)
	require.NoError(t, err)
	assert.Equal(t, "Nama Baru", updated.Name)
}

func TestUpdateOtherUserForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	userA := seedUser(t, db, "a@example.com", constants.RoleMember)
	userB := seedUser(t, db, "b@example.com", constants.RoleMember)

	name := "Nama Baru"
	_, err := svc.Update(
		authz.Actor{ID: userA.ID, Role: constants.RoleMember},
		userB.ID,
		&userDto.UserUpdateRequest{Name: &name},
	)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
}

func TestUpdateDuplicateEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	userA := seedUser(t, db, "a@example.com", constants.RoleMember)
	seedUser(t, db, "b@example.com", constants.RoleMember)

	email := "b@example.com"
	_, err := svc.Update(
		authz.Actor{ID: userA.ID, Role: constants.RoleMember},
		userA.ID,
		&userDto.UserUpdateRequest{Email: &email},
	)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "User already exists", appErr.Message)
}

func TestDeleteUserAsAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	admin := seedUser(t, db, "admin@example.com", constants.RoleAdmin)
	user := seedUser(t, db, "a@example.com", constants.RoleMember)

	require.NoError(t, svc.Delete(authz.Actor{ID: admin.ID, Role: constants.RoleAdmin}, user.ID))

	_, err := svc.FindByID(user.ID)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestDeleteUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	admin := seedUser(t, db, "admin@example.com", constants.RoleAdmin)

	err := svc.Delete(authz.Actor{ID: admin.ID, Role: constants.RoleAdmin}, uuid.New())
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}
