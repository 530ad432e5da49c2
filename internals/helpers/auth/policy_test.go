package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pelayananku_backend/internals/constants"
)

func TestAuthorize(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	cases := []struct {
		name     string
		actor    Actor
		action   Action
		resource *Resource
		wantCode int // 0 = allow
		wantMsg  string
	}{
		{
			name:   "admin creates department",
			actor:  Actor{ID: self, Role: constants.RoleAdmin},
			action: ActionDepartmentCreate,
		},
		{
			name:   "leader creates department",
			actor:  Actor{ID: self, Role: constants.RoleLeader},
			action: ActionDepartmentCreate,
		},
		{
			name:     "member creates department",
			actor:    Actor{ID: self, Role: constants.RoleMember},
			action:   ActionDepartmentCreate,
			wantCode: 403,
			wantMsg:  "User is not authorized to create a department",
		},
		{
			name:   "leader manages schedule",
			actor:  Actor{ID: self, Role: constants.RoleLeader},
			action: ActionScheduleManage,
		},
		{
			name:     "member manages schedule",
			actor:    Actor{ID: self, Role: constants.RoleMember},
			action:   ActionScheduleManage,
			wantCode: 403,
			wantMsg:  "Permission denied",
		},
		{
			name:     "member manages participants",
			actor:    Actor{ID: self, Role: constants.RoleMember},
			action:   ActionParticipantManage,
			wantCode: 403,
			wantMsg:  "Permission denied",
		},
		{
			name:   "member manages songs",
			actor:  Actor{ID: self, Role: constants.RoleMember},
			action: ActionSongManage,
		},
		{
			name:     "unknown role manages songs",
			actor:    Actor{ID: self, Role: "GUEST"},
			action:   ActionSongManage,
			wantCode: 403,
			wantMsg:  "Permission denied",
		},
		{
			name:     "member updates own profile",
			actor:    Actor{ID: self, Role: constants.RoleMember},
			action:   ActionUserUpdate,
			resource: &Resource{OwnerID: self},
		},
		{
			name:     "member updates someone else",
			actor:    Actor{ID: self, Role: constants.RoleMember},
			action:   ActionUserUpdate,
			resource: &Resource{OwnerID: other},
			wantCode: 403,
			wantMsg:  "Permission denied",
		},
		{
			name:     "admin deletes any user",
			actor:    Actor{ID: self, Role: constants.RoleAdmin},
			action:   ActionUserDelete,
			resource: &Resource{OwnerID: other},
		},
		{
			name:     "unknown action denied",
			actor:    Actor{ID: self, Role: constants.RoleAdmin},
			action:   Action("report:export"),
			wantCode: 403,
			wantMsg:  "Permission denied",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, tc.action, tc.resource)
			if tc.wantCode == 0 {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tc.wantCode, err.Code)
			assert.Equal(t, tc.wantMsg, err.Message)
		})
	}
}
