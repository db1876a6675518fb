package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	uh *handler.UserHandler,
	identity fiber.Handler,
) {
	users := api.Group("/users")

	users.Get("/", uh.List)
	users.Post("/", identity, uh.Create)

	// Reminder preferences nested under /users/me
	me := users.Group("/me", identity)
	me.Get("/reminder-prefs", uh.GetReminderPrefs)
	me.Patch("/reminder-prefs", uh.UpdateReminderPrefs)

	u := users.Group("/:id")
	u.Get("/", uh.GetByID)
	u.Patch("/", identity, uh.Update)
	u.Delete("/", identity, uh.Delete)
}
