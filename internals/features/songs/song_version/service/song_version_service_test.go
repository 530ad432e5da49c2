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
	songModel "pelayananku_backend/internals/features/songs/song/model"
	versionDto "pelayananku_backend/internals/features/songs/song_version/dto"
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

func seedSong(t *testing.T, db *gorm.DB) *songModel.SongModel {
	t.Helper()
	song := &songModel.SongModel{Title: "Besar AnugerahMu", Artist: "JPCC Worship"}
	require.NoError(t, db.Create(song).Error)
	return song
}

func TestCreateVersionUnderSong(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSongVersionService(db)
	song := seedSong(t, db)

	created, err := svc.Create(memberActor(), song.ID, &versionDto.SongVersionRequest{
		VersionName:    "Akustik",
		Classification: "Pujian",
		Key:            "G",
	})
	require.NoError(t, err)
	assert.Equal(t, song.ID, created.SongID)
	assert.Equal(t, "G", created.Key)
}

func TestCreateVersionUnknownSong(t *testing.T) {
	svc := NewSongVersionService(setupTestDB(t))

	_, err := svc.Create(memberActor(), uuid.New(), &versionDto.SongVersionRequest{
		VersionName:    "Akustik",
		Classification: "Pujian",
		Key:            "G",
	})
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Song not found", appErr.Message)
}

func TestFindAllBySong(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSongVersionService(db)
	song := seedSong(t, db)

	for _, key := range []string{"G", "A"} {
		_, err := svc.Create(memberActor(), song.ID, &versionDto.SongVersionRequest{
			VersionName:    "Versi " + key,
			Classification: "Pujian",
			Key:            key,
		})
		require.NoError(t, err)
	}

	versions, err := svc.FindAllBySong(song.ID)
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

func TestUpdateVersionPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSongVersionService(db)
	song := seedSong(t, db)

	created, err := svc.Create(memberActor(), song.ID, &versionDto.SongVersionRequest{
		VersionName:    "Akustik",
		Classification: "Pujian",
		Key:            "G",
	})
	require.NoError(t, err)

	key := "A"
	updated, err := svc.Update(memberActor(), created.ID, &versionDto.SongVersionUpdateRequest{Key: &key})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Key)
	assert.Equal(t, "Akustik", updated.VersionName)
}

func TestDeleteVersion(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSongVersionService(db)
	song := seedSong(t, db)

	created, err := svc.Create(memberActor(), song.ID, &versionDto.SongVersionRequest{
		VersionName:    "Akustik",
		Classification: "Pujian",
		Key:            "G",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(memberActor(), created.ID))

	_, err = svc.FindByID(created.ID)
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestVersionMutationDeniedForUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSongVersionService(db)
	song := seedSong(t, db)

	guest := authz.Actor{ID: uuid.New(), Role: "GUEST"}
	_, err := svc.Create(guest, song.ID, &versionDto.SongVersionRequest{
		VersionName:    "Akustik",
		Classification: "Pujian",
		Key:            "G",
	})
	require.Error(t, err)
	appErr, ok := helper.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
}
