package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rateLimiter "pelayananku_backend/internals/middlewares"
	authMiddleware "pelayananku_backend/internals/middlewares/auth"
	routeDetails "pelayananku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// rate limiter global
	app.Use(rateLimiter.GlobalRateLimiter())

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// 🔓 register / login / setup, tanpa token
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PROTECTED =====================
	// Semua route lain wajib bearer token dan setup awal yang sudah selesai.
	log.Println("[INFO] Setting up PROTECTED group...")
	protected := app.Group("/",
		authMiddleware.AuthMiddleware(),
		authMiddleware.CheckInitialSetup(db),
	)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(protected, db)

	log.Println("[INFO] Mounting Department routes...")
	routeDetails.DepartmentRoutes(protected, db)

	log.Println("[INFO] Mounting Song routes...")
	routeDetails.SongRoutes(protected, db)
}
