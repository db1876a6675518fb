package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	// HeaderUserID is set by the authentication gateway in front of this
	// service. Authentication itself is not this service's concern.
	HeaderUserID = "X-User-Id"
	LocalActorID = "actor_id"
)

// Identity requires a valid X-User-Id header and stores the acting user
// id in locals. Handlers pass it explicitly into services.
func Identity() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := c.Get(HeaderUserID)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing " + HeaderUserID + " header"})
		}

		actorID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid " + HeaderUserID + " header"})
		}

		c.Locals(LocalActorID, actorID)
		return c.Next()
	}
}

// ActorIDFromFiber retrieves the acting user id from Fiber locals.
func ActorIDFromFiber(c fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(LocalActorID)
	id, ok := v.(uuid.UUID)
	return id, ok
}
