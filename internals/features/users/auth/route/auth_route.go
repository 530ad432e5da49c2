package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "pelayananku_backend/internals/features/users/auth/controller"
	rateLimiter "pelayananku_backend/internals/middlewares"
)

// AuthRoutes memasang endpoint publik: register, login, dan setup awal.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// 🔓 Public (tanpa token)
	app.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	app.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	app.Post("/setup", authController.Setup)
}
