// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Ainaz03/EM-BMS/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the HTTP surface using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register binds routes. Registration is open; everything else requires the
// actor middleware to have resolved the authenticated user.
func (h *Handler) Register(app *fiber.App, actor fiber.Handler) {
	app.Post("/auth/register", h.PostRegister)

	app.Post("/teams", actor, h.PostTeam)
	app.Get("/teams/:id", actor, h.GetTeam)
	app.Post("/teams/join", actor, h.PostJoinTeam)
	app.Post("/teams/:id/members/:userID", actor, h.PostAddMember)
	app.Delete("/teams/:id/members/:userID", actor, h.DeleteRemoveMember)
	app.Patch("/teams/:id/members/:userID/role", actor, h.PatchMemberRole)

	app.Post("/tasks", actor, h.PostTask)
	app.Get("/tasks", actor, h.GetTeamTasks)
	app.Patch("/tasks/:id", actor, h.PatchTask)
	app.Delete("/tasks/:id", actor, h.DeleteTask)
	app.Post("/tasks/:id/comments", actor, h.PostComment)
	app.Post("/tasks/:id/evaluation", actor, h.PostEvaluation)

	app.Post("/meetings", actor, h.PostMeeting)
	app.Get("/meetings", actor, h.GetUserMeetings)
	app.Patch("/meetings/:id", actor, h.PatchMeeting)
	app.Delete("/meetings/:id", actor, h.DeleteMeeting)
}
