package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	songDto "pelayananku_backend/internals/features/songs/song/dto"
	songRepo "pelayananku_backend/internals/features/songs/song/repository"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type SongService struct {
	DB *gorm.DB
}

func NewSongService(db *gorm.DB) *SongService {
	return &SongService{DB: db}
}

func (s *SongService) Create(actor authz.Actor, req *songDto.SongRequest) (*songDto.SongResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionSongManage, nil); appErr != nil {
		return nil, appErr
	}

	song := req.ToModel()
	if err := songRepo.CreateSong(s.DB, song); err != nil {
		log.Printf("[ERROR] Gagal menyimpan lagu: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to create song")
	}
	return songDto.ToSongResponse(song), nil
}

func (s *SongService) FindAll() ([]songDto.SongResponse, error) {
	songs, err := songRepo.FindAllSongs(s.DB)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar lagu: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to fetch songs")
	}
	return songDto.ToSongResponseList(songs), nil
}

func (s *SongService) FindByID(songID uuid.UUID) (*songDto.SongDetailResponse, error) {
	song, err := songRepo.FindSongByID(s.DB, songID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Song not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return songDto.ToSongDetailResponse(song), nil
}

func (s *SongService) Update(actor authz.Actor, songID uuid.UUID, req *songDto.SongUpdateRequest) (*songDto.SongResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionSongManage, nil); appErr != nil {
		return nil, appErr
	}

	if _, err := songRepo.FindSongByID(s.DB, songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Song not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Artist != nil {
		updates["artist"] = *req.Artist
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.ScheduleID != nil {
		updates["schedule_id"] = *req.ScheduleID
	}
	if len(updates) == 0 {
		return nil, helper.ErrBadRequest("Tidak ada field yang diupdate")
	}

	if err := songRepo.UpdateSong(s.DB, songID, updates); err != nil {
		log.Printf("[ERROR] Gagal memperbarui lagu: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to update song")
	}

	song, err := songRepo.FindSongByID(s.DB, songID)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return songDto.ToSongResponse(song), nil
}

// Delete: versi-versi lagu ikut terhapus (satu transaksi).
func (s *SongService) Delete(actor authz.Actor, songID uuid.UUID) error {
	if appErr := authz.Authorize(actor, authz.ActionSongManage, nil); appErr != nil {
		return appErr
	}

	if _, err := songRepo.FindSongByID(s.DB, songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Song not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := songRepo.DeleteSongWithVersions(s.DB, songID); err != nil {
		log.Printf("[ERROR] Gagal menghapus lagu: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to delete song")
	}
	return nil
}
