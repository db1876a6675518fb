package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	identity fiber.Handler,
) {
	appts := api.Group("/appointments")

	appts.Get("/", ah.List)
	appts.Get("/slots", ah.Slots)
	appts.Get("/upcoming", ah.Upcoming)
	appts.Post("/", identity, ah.Book)

	a := appts.Group("/:id")
	a.Get("/", ah.GetByID)
	a.Patch("/reschedule", identity, ah.Reschedule)
	a.Patch("/cancel", identity, ah.Cancel)
	a.Patch("/complete", identity, ah.Complete)
}
