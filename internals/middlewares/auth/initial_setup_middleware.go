package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userRepo "pelayananku_backend/internals/features/users/user/repository"
)

// CheckInitialSetup menolak akses sebelum user menyelesaikan setup awal
// (memilih role lewat kode undangan). Dipasang setelah AuthMiddleware.
func CheckInitialSetup(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		user, err := userRepo.FindUserByID(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Println("[ERROR] cek initial setup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		if !user.InitialSetupCompleted {
			return fiber.NewError(fiber.StatusForbidden, "Initial setup required before accessing this route.")
		}

		return c.Next()
	}
}
