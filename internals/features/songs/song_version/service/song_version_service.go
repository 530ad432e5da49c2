package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	songRepo "pelayananku_backend/internals/features/songs/song/repository"
	versionDto "pelayananku_backend/internals/features/songs/song_version/dto"
	versionRepo "pelayananku_backend/internals/features/songs/song_version/repository"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type SongVersionService struct {
	DB *gorm.DB
}

func NewSongVersionService(db *gorm.DB) *SongVersionService {
	return &SongVersionService{DB: db}
}

func (s *SongVersionService) resolveSong(songID uuid.UUID) error {
	if _, err := songRepo.FindSongByID(s.DB, songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Song not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return nil
}

func (s *SongVersionService) Create(actor authz.Actor, songID uuid.UUID, req *versionDto.SongVersionRequest) (*versionDto.SongVersionResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionSongManage, nil); appErr != nil {
		return nil, appErr
	}

	if err := s.resolveSong(songID); err != nil {
		return nil, err
	}

	version := req.ToModel(songID)
	if err := versionRepo.CreateSongVersion(s.DB, version); err != nil {
		log.Printf("[ERROR] Gagal menyimpan versi lagu: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to create song version")
	}
	return versionDto.ToSongVersionResponse(version), nil
}

func (s *SongVersionService) FindAllBySong(songID uuid.UUID) ([]versionDto.SongVersionResponse, error) {
	if err := s.resolveSong(songID); err != nil {
		return nil, err
	}

	versions, err := versionRepo.FindSongVersionsBySong(s.DB, songID)
	if err != nil {
		log.Printf("[ERROR] Gagal mengambil versi lagu: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to fetch song versions")
	}
	return versionDto.ToSongVersionResponseList(versions), nil
}

func (s *SongVersionService) FindByID(versionID uuid.UUID) (*versionDto.SongVersionResponse, error) {
	version, err := versionRepo.FindSongVersionByID(s.DB, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Song version not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return versionDto.ToSongVersionResponse(version), nil
}

func (s *SongVersionService) Update(actor authz.Actor, versionID uuid.UUID, req *versionDto.SongVersionUpdateRequest) (*versionDto.SongVersionResponse, error) {
	if appErr := authz.Authorize(actor, authz.ActionSongManage, nil); appErr != nil {
		return nil, appErr
	}

	if _, err := versionRepo.FindSongVersionByID(s.DB, versionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Song version not found")
		}
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	updates := map[string]interface{}{}
	if req.VersionName != nil {
		updates["version_name"] = *req.VersionName
	}
	if req.Classification != nil {
		updates["classification"] = *req.Classification
	}
	if req.Key != nil {
		updates["key"] = *req.Key
	}
	if req.LinkChord != nil {
		updates["link_chord"] = *req.LinkChord
	}
	if req.LinkVideo != nil {
		updates["link_video"] = *req.LinkVideo
	}
	if len(updates) == 0 {
		return nil, helper.ErrBadRequest("Tidak ada field yang diupdate")
	}

	if err := versionRepo.UpdateSongVersion(s.DB, versionID, updates); err != nil {
		log.Printf("[ERROR] Gagal memperbarui versi lagu: %v", err)
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Failed to update song version")
	}

	version, err := versionRepo.FindSongVersionByID(s.DB, versionID)
	if err != nil {
		return nil, helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}
	return versionDto.ToSongVersionResponse(version), nil
}

func (s *SongVersionService) Delete(actor authz.Actor, versionID uuid.UUID) error {
	if appErr := authz.Authorize(actor, authz.ActionSongManage, nil); appErr != nil {
		return appErr
	}

	if _, err := versionRepo.FindSongVersionByID(s.DB, versionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("Song version not found")
		}
		return helper.NewAppError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := versionRepo.DeleteSongVersion(s.DB, versionID); err != nil {
		log.Printf("[ERROR] Gagal menghapus versi lagu: %v", err)
		return helper.NewAppError(fiber.StatusInternalServerError, "Failed to delete song version")
	}
	return nil
}
