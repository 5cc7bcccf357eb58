package handlers_fiber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ainaz03/EM-BMS/internal/api"
	"github.com/Ainaz03/EM-BMS/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func doWriteError(t *testing.T, err error) (int, api.ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, reqErr := app.Test(req)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   api.ErrorCode
	}{
		{"forbidden", entities.ErrForbidden, http.StatusForbidden, api.FORBIDDEN},
		{"user_not_found", entities.ErrUserNotFound, http.StatusNotFound, api.NOTFOUND},
		{"team_not_found", entities.ErrTeamNotFound, http.StatusNotFound, api.NOTFOUND},
		{"task_not_found", entities.ErrTaskNotFound, http.StatusNotFound, api.NOTFOUND},
		{"meeting_not_found", entities.ErrMeetingNotFound, http.StatusNotFound, api.NOTFOUND},
		{"team_exists", entities.ErrTeamExists, http.StatusBadRequest, api.TEAMEXISTS},
		{"email_taken", entities.ErrEmailTaken, http.StatusBadRequest, api.EMAILTAKEN},
		{"invalid_interval", entities.ErrInvalidInterval, http.StatusBadRequest, api.INVALIDINTERVAL},
		{"scheduling_conflict", entities.ErrSchedulingConflict, http.StatusConflict, api.SCHEDULINGCONFLICT},
		{"cross_team", entities.ErrCrossTeamAssignment, http.StatusBadRequest, api.CROSSTEAMASSIGNMENT},
		{"task_not_done", entities.ErrTaskNotDone, http.StatusConflict, api.TASKNOTDONE},
		{"already_evaluated", entities.ErrAlreadyEvaluated, http.StatusConflict, api.ALREADYEVALUATED},
		{"invalid_score", entities.ErrInvalidScore, http.StatusBadRequest, api.INVALIDSCORE},
		{"invalid_argument", entities.ErrInvalidArgument, http.StatusBadRequest, api.INVALIDARGUMENT},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			status, body := doWriteError(t, tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestWriteErrorConflictNamesBlockedUser(t *testing.T) {
	status, body := doWriteError(t, &entities.ConflictError{UserID: 42, MeetingID: 7})
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, api.SCHEDULINGCONFLICT, body.Error.Code)
	require.Equal(t, "participant 42 is double-booked by meeting 7", body.Error.Message)
}

func TestWriteErrorUnknownIsInternal(t *testing.T) {
	status, body := doWriteError(t, fiber.ErrTeapot)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, api.INTERNAL, body.Error.Code)
}
