package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/handler"
)

func (r *Router) registerRecordRoutes(
	api fiber.Router,
	rh *handler.RecordHandler,
	identity fiber.Handler,
) {
	records := api.Group("/records", identity)

	records.Post("/", rh.Create)

	rec := records.Group("/:id")
	rec.Get("/", rh.GetByID)
	rec.Patch("/", rh.Update)
	rec.Delete("/", rh.Delete)
}
