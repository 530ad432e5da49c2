package auth

import (
	"github.com/google/uuid"

	"pelayananku_backend/internals/constants"
	helper "pelayananku_backend/internals/helpers"
)

// Actor adalah identitas pemanggil yang sudah terverifikasi token.
type Actor struct {
	ID           uuid.UUID
	Role         string
	DepartmentID *uuid.UUID
}

// Action adalah operasi mutating yang butuh otorisasi.
type Action string

const (
	ActionDepartmentCreate  Action = "department:create"
	ActionDepartmentUpdate  Action = "department:update"
	ActionDepartmentDelete  Action = "department:delete"
	ActionDepartmentMembers Action = "department:manage-members"
	ActionScheduleManage    Action = "schedule:manage"
	ActionParticipantManage Action = "participant:manage"
	ActionSongManage        Action = "song:manage"
	ActionUserUpdate        Action = "user:update"
	ActionUserDelete        Action = "user:delete"
)

// Resource memberi konteks kepemilikan untuk aturan "self".
type Resource struct {
	OwnerID      uuid.UUID
	DepartmentID *uuid.UUID
}

// Authorize adalah satu-satunya titik keputusan role untuk semua operasi
// mutating di workflow layer. Return nil = allow.
func Authorize(actor Actor, action Action, res *Resource) *helper.AppError {
	switch action {
	case ActionDepartmentCreate:
		if !isLeaderOrAdmin(actor.Role) {
			return helper.ErrForbidden("User is not authorized to create a department")
		}
		return nil

	case ActionDepartmentUpdate,
		ActionDepartmentDelete,
		ActionDepartmentMembers,
		ActionScheduleManage,
		ActionParticipantManage:
		if !isLeaderOrAdmin(actor.Role) {
			return helper.ErrForbidden("Permission denied")
		}
		return nil

	case ActionSongManage:
		// semua role yang sudah login boleh mengelola katalog lagu
		if !constants.ValidRole(actor.Role) {
			return helper.ErrForbidden("Permission denied")
		}
		return nil

	case ActionUserUpdate, ActionUserDelete:
		if actor.Role == constants.RoleAdmin {
			return nil
		}
		if res != nil && res.OwnerID == actor.ID {
			return nil
		}
		return helper.ErrForbidden("Permission denied")

	default:
		return helper.ErrForbidden("Permission denied")
	}
}

func isLeaderOrAdmin(role string) bool {
	return role == constants.RoleLeader || role == constants.RoleAdmin
}
