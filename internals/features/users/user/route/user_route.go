package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "pelayananku_backend/internals/features/users/user/controller"
)

// UserRoutes memasang endpoint user di router yang sudah ber-JWT.
func UserRoutes(app fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	app.Get("/users", userCtrl.GetAllUsers)
	app.Get("/users/:id", userCtrl.GetUserByID)
	app.Put("/users/:id", userCtrl.UpdateUser)
	app.Delete("/users/:id", userCtrl.DeleteUser)
}
