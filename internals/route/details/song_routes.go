package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	songRoute "pelayananku_backend/internals/features/songs/song/route"
)

func SongRoutes(app fiber.Router, db *gorm.DB) {
	songRoute.SongRoutes(app, db)
}
