package handlers_fiber

import (
	"net/http"

	"github.com/Ainaz03/EM-BMS/internal/api"
	"github.com/Ainaz03/EM-BMS/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTask creates a task assigned within the actor's team.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	var req api.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	task, err := h.uc.CreateTask(c.Context(), actorID(c), req.Title, req.Description, req.Deadline, req.AssigneeID)
	if err != nil {
		h.log.Errorw("create task", "title", req.Title, "assignee", req.AssigneeID, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPITask(*task))
}

// GetTeamTasks lists tasks created within the actor's team.
func (h *Handler) GetTeamTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.ListTeamTasks(c.Context(), actorID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(mapper.ToAPITaskList(tasks))
}

// PatchTask applies a partial update to a task.
func (h *Handler) PatchTask(c *fiber.Ctx) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req api.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	task, err := h.uc.UpdateTask(c.Context(), actorID(c), taskID, mapper.FromAPITaskPatch(req))
	if err != nil {
		h.log.Errorw("update task", "task", taskID, "error", err)
		return writeError(c, err)
	}

	return c.JSON(mapper.ToAPITask(*task))
}

// DeleteTask removes a task together with its comments and evaluation.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteTask(c.Context(), actorID(c), taskID); err != nil {
		h.log.Errorw("delete task", "task", taskID, "error", err)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// PostComment attaches a comment to a task.
func (h *Handler) PostComment(c *fiber.Ctx) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req api.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	comment, err := h.uc.AddComment(c.Context(), actorID(c), taskID, req.Text)
	if err != nil {
		h.log.Errorw("add comment", "task", taskID, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIComment(*comment))
}

// PostEvaluation scores a completed task. Each task takes one score only.
func (h *Handler) PostEvaluation(c *fiber.Ctx) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req api.SubmitEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	eval, err := h.uc.SubmitEvaluation(c.Context(), actorID(c), taskID, req.Score)
	if err != nil {
		h.log.Errorw("submit evaluation", "task", taskID, "score", req.Score, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIEvaluation(*eval))
}
