package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "pelayananku_backend/internals/features/users/user/route"
)

func UserRoutes(app fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(app, db)
}
