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
	songDto "pelayananku_backend/internals/features/songs/song/dto"
	versionModel "pelayananku_backend/internals/features/songs/song_version/model"
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

func memberActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: constants.RoleMember}
}

func TestCreateAndFindSong(t *testing.T) {
	svc := NewSongService(setupTestDB(t))

	created, err := svc.Create(memberActor(), &songDto.SongRequest{
		Title:  "Besar AnugerahMu",
		Artist: "JPCC Worship",
	})
	require.NoError(t, err)

	found, err := svc.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Besar AnugerahMu", found.Title)
	assert.Empty(t, found.Versions)
}

func TestFindSongNotFound(t *testing.T) {
	svc := NewSongService(setupTestDB(t))

	_, err := svc.FindByID(uuid.New())
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Song not found", appErr.Message)
}

func TestUpdateSongPartial(t *testing.T) {
	svc := NewSongService(setupTestDB(t))

	created, err := svc.Create(memberActor(), &songDto.SongRequest{
		Title:  "Besar AnugerahMu",
		Artist: "JPCC Worship",
	})
	require.NoError(t, err)

	title := "KasihMu Besar"
	updated, err := svc.Update(memberActor(), created.ID, &songDto.SongUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "KasihMu Besar", updated.Title)
	assert.Equal(t, "JPCC Worship", updated.Artist)
}

// Menghapus lagu ikut menghapus semua versinya dalam satu transaksi.
func TestDeleteSongCascadesVersions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSongService(db)

	created, err := svc.Create(memberActor(), &songDto.SongRequest{
		Title:  "Besar AnugerahMu",
		Artist: "JPCC Worship",
	})
	require.NoError(t, err)

	require.NoError(t, db.Create(&versionModel.SongVersionModel{
		VersionName:    "Akustik",
		Classification: "Pujian",
		Key:            "G",
		SongID:         created.ID,
	}).Error)

	require.NoError(t, svc.Delete(memberActor(), created.ID))

	var count int64
	require.NoError(t, db.Model(&versionModel.SongVersionModel{}).
		Where("song_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err = svc.FindByID(created.ID)
	require.Error(t, err)
}

// Role di luar daftar yang dikenal ditolak kebijakan.
func TestSongMutationDeniedForUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSongService(db)

	guest := authz.Actor{ID: uuid.New(), Role: "GUEST"}
	_, err := svc.Create(guest, &songDto.SongRequest{
		Title:  "Besar AnugerahMu",
		Artist: "JPCC Worship",
	})
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, "Permission denied", appErr.Message)

	var count int64
	require.NoError(t, db.Table("songs").Count(&count).Error)
	assert.Zero(t, count)
}
