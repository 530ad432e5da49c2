package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pelayananku_backend/internals/features/songs/song_version/dto"
	"pelayananku_backend/internals/features/songs/song_version/service"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type SongVersionController struct {
	Service *service.SongVersionService
}

func NewSongVersionController(db *gorm.DB) *SongVersionController {
	return &SongVersionController{Service: service.NewSongVersionService(db)}
}

// 🟢 POST /songs/:songId/song-versions
func (ctrl *SongVersionController) CreateSongVersion(c *fiber.Ctx) error {
	songID, err := uuid.Parse(c.Params("songId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Song ID tidak valid")
	}

	var req dto.SongVersionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	actor, actorErr := authz.ActorFromCtx(c)
	if actorErr != nil {
		return actorErr
	}

	version, svcErr := ctrl.Service.Create(actor, songID, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonCreated(c, "Versi lagu berhasil dibuat", version)
}

// 🟢 GET /songs/:songId/song-versions
func (ctrl *SongVersionController) GetSongVersions(c *fiber.Ctx) error {
	songID, err := uuid.Parse(c.Params("songId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Song ID tidak valid")
	}

	versions, svcErr := ctrl.Service.FindAllBySong(songID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonList(c, "Daftar versi lagu berhasil diambil", versions, nil)
}

// 🟢 GET /song-versions/:versionId
func (ctrl *SongVersionController) GetSongVersionByID(c *fiber.Ctx) error {
	versionID, err := uuid.Parse(c.Params("versionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Version ID tidak valid")
	}

	version, svcErr := ctrl.Service.FindByID(versionID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonOK(c, "Versi lagu berhasil ditemukan", version)
}

// 🟡 PUT /song-versions/:versionId
func (ctrl *SongVersionController) UpdateSongVersion(c *fiber.Ctx) error {
	versionID, err := uuid.Parse(c.Params("versionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Version ID tidak valid")
	}

	var req dto.SongVersionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	actor, actorErr := authz.ActorFromCtx(c)
	if actorErr != nil {
		return actorErr
	}

	version, svcErr := ctrl.Service.Update(actor, versionID, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonUpdated(c, "Versi lagu berhasil diperbarui", version)
}

// 🔴 DELETE /song-versions/:versionId
func (ctrl *SongVersionController) DeleteSongVersion(c *fiber.Ctx) error {
	versionID, err := uuid.Parse(c.Params("versionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Version ID tidak valid")
	}

	actor, actorErr := authz.ActorFromCtx(c)
	if actorErr != nil {
		return actorErr
	}

	if svcErr := ctrl.Service.Delete(actor, versionID); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonNoContent(c)
}
