package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentRoute "pelayananku_backend/internals/features/departments/department/route"
)

func DepartmentRoutes(app fiber.Router, db *gorm.DB) {
	departmentRoute.DepartmentRoutes(app, db)
}
