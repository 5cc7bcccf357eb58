package handlers_fiber

import (
	"net/http"

	"github.com/Ainaz03/EM-BMS/internal/api"
	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team with the actor as its admin.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var req api.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), actorID(c), req.Name)
	if err != nil {
		h.log.Errorw("create team", "name", req.Name, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// GetTeam returns a team with its member list.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	team, err := h.uc.Team(c.Context(), actorID(c), teamID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(mapper.ToAPITeam(*team))
}

// PostJoinTeam enrolls the actor into the team matching the invite code.
func (h *Handler) PostJoinTeam(c *fiber.Ctx) error {
	var req api.JoinTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	team, err := h.uc.JoinTeam(c.Context(), actorID(c), req.InviteCode)
	if err != nil {
		h.log.Errorw("join team", "actor", actorID(c), "error", err)
		return writeError(c, err)
	}

	return c.JSON(mapper.ToAPITeam(*team))
}

// PostAddMember attaches a teamless user to the team.
func (h *Handler) PostAddMember(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := paramID(c, "userID")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.AddMember(c.Context(), actorID(c), teamID, userID); err != nil {
		h.log.Errorw("add member", "team", teamID, "user", userID, "error", err)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// DeleteRemoveMember detaches a member from the team.
func (h *Handler) DeleteRemoveMember(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := paramID(c, "userID")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.RemoveMember(c.Context(), actorID(c), teamID, userID); err != nil {
		h.log.Errorw("remove member", "team", teamID, "user", userID, "error", err)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// PatchMemberRole changes a member's role inside the team.
func (h *Handler) PatchMemberRole(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := paramID(c, "userID")
	if err != nil {
		return writeError(c, err)
	}

	var req api.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	if err := h.uc.ChangeMemberRole(c.Context(), actorID(c), teamID, userID, entities.Role(req.Role)); err != nil {
		h.log.Errorw("change member role", "team", teamID, "user", userID, "role", req.Role, "error", err)
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
