package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	versionModel "pelayananku_backend/internals/features/songs/song_version/model"
)

func CreateSongVersion(db *gorm.DB, version *versionModel.SongVersionModel) error {
	return db.Create(version).Error
}

func FindSongVersionByID(db *gorm.DB, versionID uuid.UUID) (*versionModel.SongVersionModel, error) {
	var version versionModel.SongVersionModel
	if err := db.First(&version, "id = ?", versionID).Error; err != nil {
		return nil, err
	}
	return &version, nil
}

func FindSongVersionsBySong(db *gorm.DB, songID uuid.UUID) ([]versionModel.SongVersionModel, error) {
	var versions []versionModel.SongVersionModel
	if err := db.Where("song_id = ?", songID).Order("created_at ASC").Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

func UpdateSongVersion(db *gorm.DB, versionID uuid.UUID, updates map[string]interface{}) error {
	return db.Model(&versionModel.SongVersionModel{}).Where("id = ?", versionID).Updates(updates).Error
}

func DeleteSongVersion(db *gorm.DB, versionID uuid.UUID) error {
	return db.Delete(&versionModel.SongVersionModel{}, "id = ?", versionID).Error
}
