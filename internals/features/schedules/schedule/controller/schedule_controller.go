package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pelayananku_backend/internals/features/schedules/schedule/dto"
	"pelayananku_backend/internals/features/schedules/schedule/service"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type ScheduleController struct {
	Service *service.ScheduleService
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{Service: service.NewScheduleService(db)}
}

// 🟢 POST /departments/:departmentId/schedules
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	schedule, svcErr := ctrl.Service.Create(actor, departmentID, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonCreated(c, "Jadwal berhasil dibuat", schedule)
}

// 🟢 GET /departments/:departmentId/schedules
func (ctrl *ScheduleController) GetSchedules(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}

	schedules, svcErr := ctrl.Service.FindAll(departmentID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonList(c, "Daftar jadwal berhasil diambil", schedules, nil)
}

// 🟢 GET /departments/:departmentId/schedules/:scheduleId
func (ctrl *ScheduleController) GetScheduleByID(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule ID tidak valid")
	}

	schedule, svcErr := ctrl.Service.FindBySchedule(departmentID, scheduleID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonOK(c, "Jadwal berhasil ditemukan", schedule)
}

// 🟡 PUT /departments/:departmentId/schedules/:scheduleId
func (ctrl *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.ScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	schedule, svcErr := ctrl.Service.Update(actor, departmentID, scheduleID, &req)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonUpdated(c, "Jadwal berhasil diperbarui", schedule)
}

// 🔴 DELETE /departments/:departmentId/schedules/:scheduleId
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department ID tidak valid")
	}
	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	if svcErr := ctrl.Service.Delete(actor, departmentID, scheduleID); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonNoContent(c)
}
