package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/cabinetmed/cabinet_backend/internal/api/http/handler"
)

func (r *Router) registerInvoiceRoutes(
	api fiber.Router,
	ih *handler.InvoiceHandler,
	identity fiber.Handler,
) {
	invoices := api.Group("/invoices")

	invoices.Get("/", ih.List)
	invoices.Get("/summary", ih.Summary)
	invoices.Post("/", identity, ih.Issue)

	i := invoices.Group("/:id")
	i.Get("/", ih.GetByID)
	i.Patch("/settle", identity, ih.Settle)
	i.Patch("/void", identity, ih.Void)
}
