package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ainaz03/EM-BMS/internal/api"
	"github.com/Ainaz03/EM-BMS/internal/entities"
	"github.com/Ainaz03/EM-BMS/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// ActorKey is the Locals key the resolved actor is stored under.
const ActorKey = "actor"

// actorHeader carries the authenticated user id, set by the identity layer
// in front of this service.
const actorHeader = "X-User-Id"

// ResolveActor loads the authenticated user and stores it in request Locals.
// Requests without a resolvable actor are rejected with 401.
func ResolveActor(repo repository.UserInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(actorHeader)
		if raw == "" {
			return unauthorized(c, "missing "+actorHeader+" header")
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return unauthorized(c, "malformed "+actorHeader+" header")
		}

		user, err := repo.GetUser(c.Context(), id)
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				return unauthorized(c, "unknown user")
			}
			return err
		}

		c.Locals(ActorKey, user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorBody{Code: api.UNAUTHORIZED, Message: msg},
	})
}
