package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pelayananku_backend/internals/features/schedules/participant/dto"
	"pelayananku_backend/internals/features/schedules/participant/service"
	helper "pelayananku_backend/internals/helpers"
	authz "pelayananku_backend/internals/helpers/auth"
)

type ScheduleParticipantController struct {
	Service *service.ScheduleParticipantService
}

func NewScheduleParticipantController(db *gorm.DB) *ScheduleParticipantController {
	return &ScheduleParticipantController{Service: service.NewScheduleParticipantService(db)}
}

// parseScheduleScope membaca :departmentId dan :scheduleId dari path.
// Tidak menulis response; caller yang menerjemahkan error jadi 400.
func parseScheduleScope(c *fiber.Ctx) (departmentID, scheduleID uuid.UUID, err error) {
	departmentID, err = uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, helper.ErrBadRequest("Department ID tidak valid")
	}
	scheduleID, err = uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, helper.ErrBadRequest("Schedule ID tidak valid")
	}
	return departmentID, scheduleID, nil
}

// 🟢 POST /departments/:departmentId/schedules/:scheduleId/participants
func (ctrl *ScheduleParticipantController) AddParticipant(c *fiber.Ctx) error {
	departmentID, scheduleID, err := parseScheduleScope(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.AddParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	participants, svcErr := ctrl.Service.AddParticipant(actor, departmentID, scheduleID, req.UserID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonCreated(c, "Peserta berhasil ditambahkan", participants)
}

// 🟢 GET /departments/:departmentId/schedules/:scheduleId/participants
func (ctrl *ScheduleParticipantController) GetParticipants(c *fiber.Ctx) error {
	departmentID, scheduleID, err := parseScheduleScope(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	participants, svcErr := ctrl.Service.ListParticipants(departmentID, scheduleID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonList(c, "Daftar peserta berhasil diambil", participants, nil)
}

// 🟢 GET /departments/:departmentId/schedules/:scheduleId/participants/:participantId
func (ctrl *ScheduleParticipantController) GetParticipantByID(c *fiber.Ctx) error {
	departmentID, scheduleID, err := parseScheduleScope(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	participantID, err := uuid.Parse(c.Params("participantId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Participant ID tidak valid")
	}

	participant, svcErr := ctrl.Service.FindParticipantByID(departmentID, scheduleID, participantID)
	if svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonOK(c, "Peserta berhasil ditemukan", participant)
}

// 🟡 PATCH /departments/:departmentId/schedules/:scheduleId/participants/:participantId/status
func (ctrl *ScheduleParticipantController) UpdateParticipantStatus(c *fiber.Ctx) error {
	departmentID, scheduleID, err := parseScheduleScope(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	participantID, err := uuid.Parse(c.Params("participantId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Participant ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.UpdateParticipantStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	if svcErr := ctrl.Service.UpdateStatus(actor, departmentID, scheduleID, participantID, req.Status); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonNoContent(c)
}

// 🔴 DELETE /departments/:departmentId/schedules/:scheduleId/participants/:participantId
func (ctrl *ScheduleParticipantController) RemoveParticipant(c *fiber.Ctx) error {
	departmentID, _, err := parseScheduleScope(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	participantID, err := uuid.Parse(c.Params("participantId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Participant ID tidak valid")
	}

	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return err
	}

	if svcErr := ctrl.Service.RemoveParticipant(actor, departmentID, participantID); svcErr != nil {
		return helper.JsonFromError(c, svcErr)
	}
	return helper.JsonNoContent(c)
}
