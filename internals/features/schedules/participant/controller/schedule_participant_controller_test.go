package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "pelayananku_backend/internals/databases"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateAll(db))
	return db
}

func setupParticipantApp(t *testing.T) *fiber.App {
	t.Helper()

	ctrl := NewScheduleParticipantController(setupTestDB(t))
	app := fiber.New()
	app.Get("/departments/:departmentId/schedules/:scheduleId/participants", ctrl.GetParticipants)
	app.Get("/departments/:departmentId/schedules/:scheduleId/participants/:participantId", ctrl.GetParticipantByID)
	return app
}

// Path dengan UUID rusak harus berhenti di 400, bukan lanjut ke service
// (service akan menjawab 404 untuk scope yang tidak ditemukan).
func TestParticipantRoutesInvalidUUIDStopAt400(t *testing.T) {
	app := setupParticipantApp(t)

	cases := []struct {
		name    string
		path    string
		message string
	}{
		{
			name:    "department id rusak",
			path:    "/departments/not-a-uuid/schedules/" + uuid.NewString() + "/participants",
			message: "Department ID tidak valid",
		},
		{
			name:    "schedule id rusak",
			path:    "/departments/" + uuid.NewString() + "/schedules/not-a-uuid/participants",
			message: "Schedule ID tidak valid",
		},
		{
			name:    "participant id rusak",
			path:    "/departments/" + uuid.NewString() + "/schedules/" + uuid.NewString() + "/participants/not-a-uuid",
			message: "Participant ID tidak valid",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

// Scope valid tapi tidak ada di DB tetap 404 dari service.
func TestParticipantRoutesValidUUIDReachService(t *testing.T) {
	app := setupParticipantApp(t)

	path := "/departments/" + uuid.NewString() + "/schedules/" + uuid.NewString() + "/participants"
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
