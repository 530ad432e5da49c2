package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pelayananku_backend/internals/features/users/user/dto"
	"pelayananku_backend/internals/features/users/user/service"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: service.NewUserService(db)}
}

// 🟢 GET /users
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	users, err := ctrl.Service.FindAll()
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Daftar user berhasil diambil", users, nil)
}

// 🟢 GET /users/:id
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	user, svcErr := ctrl.Service.FindByID(id)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonOK(c, "User berhasil ditemukan", user)
}

// 🟡 PUT /users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	user, svcErr := ctrl.Service.Update(actor, id, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", user)
}

// 🔴 DELETE /users/:id
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	if svcErr := ctrl.Service.Delete(actor, id); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonNoContent(c)
}
