package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pelayananku_backend/internals/features/songs/song/dto"
	"pelayananku_backend/internals/features/songs/song/service"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type SongController struct {
	Service *service.SongService
}

func NewSongController(db *gorm.DB) *SongController {
	return &SongController{Service: service.NewSongService(db)}
}

// 🟢 POST /songs
func (ctrl *SongController) CreateSong(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.SongRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	song, svcErr := ctrl.Service.Create(actor, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonCreated(c, "Lagu berhasil dibuat", song)
}

// 🟢 GET /songs
func (ctrl *SongController) GetAllSongs(c *fiber.Ctx) error {
	songs, svcErr := ctrl.Service.FindAll()
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonList(c, "Daftar lagu berhasil diambil", songs, nil)
}

// 🟢 GET /songs/:songId
func (ctrl *SongController) GetSongByID(c *fiber.Ctx) error {
	songID, err := uuid.Parse(c.Params("songId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Song ID tidak valid")
	}

	song, svcErr := ctrl.Service.FindByID(songID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonOK(c, "Lagu berhasil ditemukan", song)
}

// 🟡 PUT /songs/:songId
func (ctrl *SongController) UpdateSong(c *fiber.Ctx) error {
	songID, err := uuid.Parse(c.Params("songId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Song ID tidak valid")
	}

	actor, actorErr := authz.ActorFromCtx(c)
	if actorErr != nil {
		return actorErr
	}

	var req dto.SongUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	song, svcErr := ctrl.Service.Update(actor, songID, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonUpdated(c, "Lagu berhasil diperbarui", song)
}

// 🔴 DELETE /songs/:songId
func (ctrl *SongController) DeleteSong(c *fiber.Ctx) error {
	songID, err := uuid.Parse(c.Params("songId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Song ID tidak valid")
	}

	actor, actorErr := authz.ActorFromCtx(c)
	if actorErr != nil {
		return actorErr
	}

	if svcErr := ctrl.Service.Delete(actor, songID); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonNoContent(c)
}
