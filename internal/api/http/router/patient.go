package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	rh *handler.RecordHandler,
	identity fiber.Handler,
) {
	patients := api.Group("/patients")

	patients.Get("/", ph.List)
	patients.Post("/", identity, ph.Create)

	p := patients.Group("/:id")
	p.Get("/", ph.GetByID)
	p.Patch("/", identity, ph.Update)
	p.Delete("/", identity, ph.Delete)
	p.Get("/records", identity, rh.ListByPatient)
}
