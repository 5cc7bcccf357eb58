package handlers_fiber

import (
	"net/http"

	"github.com/Ainaz03/EM-BMS/internal/api"
	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostRegister creates a user record. Role defaults to USER when omitted.
func (h *Handler) PostRegister(c *fiber.Ctx) error {
	var req api.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "malformed request body"))
	}

	user, err := h.uc.RegisterUser(c.Context(), req.Email, entities.Role(req.Role))
	if err != nil {
		h.log.Errorw("register user", "email", req.Email, "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*user))
}
