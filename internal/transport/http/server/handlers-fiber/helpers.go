package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ainaz03/EM-BMS/internal/api"
	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	var conflict *entities.ConflictError

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "not enough permissions"
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrMeetingNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusBadRequest
		code = api.TEAMEXISTS
		msg = "team name already exists"
	case errors.Is(err, entities.ErrEmailTaken):
		status = http.StatusBadRequest
		code = api.EMAILTAKEN
		msg = "email already registered"
	case errors.Is(err, entities.ErrInvalidInterval):
		status = http.StatusBadRequest
		code = api.INVALIDINTERVAL
		msg = "meeting end must be after start"
	case errors.As(err, &conflict):
		status = http.StatusConflict
		code = api.SCHEDULINGCONFLICT
		msg = fmt.Sprintf("participant %d is double-booked by meeting %d", conflict.UserID, conflict.MeetingID)
	case errors.Is(err, entities.ErrSchedulingConflict):
		status = http.StatusConflict
		code = api.SCHEDULINGCONFLICT
		msg = "participant is double-booked"
	case errors.Is(err, entities.ErrCrossTeamAssignment):
		status = http.StatusBadRequest
		code = api.CROSSTEAMASSIGNMENT
		msg = "creator and assignee must belong to the same team"
	case errors.Is(err, entities.ErrTaskNotDone):
		status = http.StatusConflict
		code = api.TASKNOTDONE
		msg = "only DONE tasks can be evaluated"
	case errors.Is(err, entities.ErrAlreadyEvaluated):
		status = http.StatusConflict
		code = api.ALREADYEVALUATED
		msg = "task already has an evaluation"
	case errors.Is(err, entities.ErrInvalidScore):
		status = http.StatusBadRequest
		code = api.INVALIDSCORE
		msg = "score must be between 1 and 5"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

func actorID(c *fiber.Ctx) int64 {
	user, _ := c.Locals(middleware.ActorKey).(*entities.User)
	if user == nil {
		return 0
	}
	return user.ID
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", entities.ErrInvalidArgument, name)
	}
	return int64(id), nil
}
