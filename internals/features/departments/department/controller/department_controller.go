package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pelayananku_backend/internals/features/departments/department/dto"
	"pelayananku_backend/internals/features/departments/department/service"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type DepartmentController struct {
	Service *service.DepartmentService
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{Service: service.NewDepartmentService(db)}
}

// 🟢 POST /departments
func (ctrl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	department, svcErr := ctrl.Service.Create(actor, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonCreated(c, "Department berhasil dibuat", department)
}

// 🟢 GET /departments
func (ctrl *DepartmentController) GetAllDepartments(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	departments, svcErr := ctrl.Service.FindAll(actor)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonList(c, "Daftar department berhasil diambil", departments, nil)
}

// 🟢 GET /departments/:departmentId
func (ctrl *DepartmentController) GetDepartmentByID(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}

	department, svcErr := ctrl.Service.FindByID(departmentID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonOK(c, "Department berhasil ditemukan", department)
}

// 🟡 PUT /departments/:departmentId
func (ctrl *DepartmentController) UpdateDepartment(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.DepartmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	department, svcErr := ctrl.Service.Update(actor, departmentID, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonUpdated(c, "Department berhasil diperbarui", department)
}

// 🔴 DELETE /departments/:departmentId
func (ctrl *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	if svcErr := ctrl.Service.Delete(actor, departmentID); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonNoContent(c)
}

// 🟢 POST /departments/:departmentId/users/:id
func (ctrl *DepartmentController) AddUserToDepartment(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	if svcErr := ctrl.Service.AddUser(actor, departmentID, userID); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonCreated(c, "User berhasil ditambahkan ke department", nil)
}

// 🔴 DELETE /departments/:departmentId/users/:id
func (ctrl *DepartmentController) RemoveUserFromDepartment(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	if svcErr := ctrl.Service.RemoveUser(actor, departmentID, userID); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonNoContent(c)
}
