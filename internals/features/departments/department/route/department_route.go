package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pelayananku_backend/internals/constants"
	departmentController "pelayananku_backend/internals/features/departments/department/controller"
	participantController "pelayananku_backend/internals/features/schedules/participant/controller"
	scheduleController "pelayananku_backend/internals/features/schedules/schedule/controller"
	authMiddleware "pelayananku_backend/internals/middlewares/auth"
)

// DepartmentRoutes memasang endpoint department beserta jadwal dan peserta
// yang bernaung di bawahnya. Router sudah ber-JWT; mutasi disaring lagi
// dengan role LEADER/ADMIN sebelum masuk ke service.
func DepartmentRoutes(app fiber.Router, db *gorm.DB) {
	departmentCtrl := departmentController.NewDepartmentController(db)
	scheduleCtrl := scheduleController.NewScheduleController(db)
	participantCtrl := participantController.NewScheduleParticipantController(db)

	leaderOnly := authMiddleware.OnlyRoles("Permission denied", constants.LeaderAndAbove...)

	// ===================== DEPARTMENT =====================
	app.Post("/departments",
		authMiddleware.OnlyRoles("User is not authorized to create a department", constants.LeaderAndAbove...),
		departmentCtrl.CreateDepartment,
	)
	app.Get("/departments", departmentCtrl.GetAllDepartments)
	app.Get("/departments/:departmentId", departmentCtrl.GetDepartmentByID)
	app.Put("/departments/:departmentId", leaderOnly, departmentCtrl.UpdateDepartment)
	app.Delete("/departments/:departmentId", leaderOnly, departmentCtrl.DeleteDepartment)

	// ===================== MEMBERSHIP =====================
	app.Post("/departments/:departmentId/users/:id", leaderOnly, departmentCtrl.AddUserToDepartment)
	app.Delete("/departments/:departmentId/users/:id", leaderOnly, departmentCtrl.RemoveUserFromDepartment)

	// ===================== SCHEDULES =====================
	app.Post("/departments/:departmentId/schedules", leaderOnly, scheduleCtrl.CreateSchedule)
	app.Get("/departments/:departmentId/schedules", scheduleCtrl.GetSchedules)
	app.Get("/departments/:departmentId/schedules/:scheduleId", scheduleCtrl.GetScheduleByID)
	app.Put("/departments/:departmentId/schedules/:scheduleId", leaderOnly, scheduleCtrl.UpdateSchedule)
	app.Delete("/departments/:departmentId/schedules/:scheduleId", leaderOnly, scheduleCtrl.DeleteSchedule)

	// ===================== PARTICIPANTS =====================
	app.Post("/departments/:departmentId/schedules/:scheduleId/participants", leaderOnly, participantCtrl.AddParticipant)
	app.Get("/departments/:departmentId/schedules/:scheduleId/participants", participantCtrl.GetParticipants)
	app.Get("/departments/:departmentId/schedules/:scheduleId/participants/:participantId", participantCtrl.GetParticipantByID)
	app.Patch("/departments/:departmentId/schedules/:scheduleId/participants/:participantId/status", leaderOnly, participantCtrl.UpdateParticipantStatus)
	app.Delete("/departments/:departmentId/schedules/:scheduleId/participants/:participantId", leaderOnly, participantCtrl.RemoveParticipant)
}
