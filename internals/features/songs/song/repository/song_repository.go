package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	songModel "pelayananku_backend/internals/features/songs/song/model"
	versionModel "pelayananku_backend/internals/features/songs/song_version/model"
)

func CreateSong(db *gorm.DB, song *songModel.SongModel) error {
	return db.Create(song).Error
}

func FindSongByID(db *gorm.DB, songID uuid.UUID) (*songModel.SongModel, error) {
	var song songModel.SongModel
	if err := db.Preload("Versions").First(&song, "id = ?", songID).Error; err != nil {
		return nil, err
	}
	return &song, nil
}

func FindAllSongs(db *gorm.DB) ([]songModel.SongModel, error) {
	var songs []songModel.SongModel
	if err := db.Order("created_at DESC").Find(&songs).Error; err != nil {
		return nil, err
	}
	return songs, nil
}

func UpdateSong(db *gorm.DB, songID uuid.UUID, updates map[string]interface{}) error {
	return db.Model(&songModel.SongModel{}).Where("id = ?", songID).Updates(updates).Error
}

// DeleteSongWithVersions menghapus versi-versinya dulu baru lagunya,
// dalam satu transaksi.
func DeleteSongWithVersions(db *gorm.DB, songID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&versionModel.SongVersionModel{}, "song_id = ?", songID).Error; err != nil {
			return err
		}
		return tx.Delete(&songModel.SongModel{}, "id = ?", songID).Error
	})
}
