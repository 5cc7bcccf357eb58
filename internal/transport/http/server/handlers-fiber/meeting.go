package handlers_fiber

import (
	"net/http"

	"github.com/Ainaz03/EM-BMS/internal/api"
	"github.com/Ainaz03/EM-BMS/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostMeeting schedules a meeting after checking every participant is free.
func (h *Handler) PostMeeting(c *fiber.Ctx) error {
	var req api.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	meeting, err := h.uc.CreateMeeting(c.Context(), actorID(c), req.Title, req.StartTime, req.EndTime, req.ParticipantIDs)
	if err != nil {
		h.log.Errorw("create meeting", "title", req.Title, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIMeeting(*meeting))
}

// GetUserMeetings lists meetings the actor participates in.
func (h *Handler) GetUserMeetings(c *fiber.Ctx) error {
	meetings, err := h.uc.ListUserMeetings(c.Context(), actorID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(mapper.ToAPIMeetingList(meetings))
}

// PatchMeeting applies a partial update, re-running the conflict check.
func (h *Handler) PatchMeeting(c *fiber.Ctx) error {
	meetingID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req api.UpdateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	meeting, err := h.uc.UpdateMeeting(c.Context(), actorID(c), meetingID, mapper.FromAPIMeetingPatch(req))
	if err != nil {
		h.log.Errorw("update meeting", "meeting", meetingID, "error", err)
		return writeError(c, err)
	}

	return c.JSON(mapper.ToAPIMeeting(*meeting))
}

// DeleteMeeting cancels a meeting and frees its slots.
func (h *Handler) DeleteMeeting(c *fiber.Ctx) error {
	meetingID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteMeeting(c.Context(), actorID(c), meetingID); err != nil {
		h.log.Errorw("delete meeting", "meeting", meetingID, "error", err)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
