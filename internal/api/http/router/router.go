package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/cabinetmed/cabinet_backend/config"
	"github.com/cabinetmed/cabinet_backend/internal/api/http/handler"
	"github.com/cabinetmed/cabinet_backend/internal/api/http/middleware"
	"github.com/cabinetmed/cabinet_backend/internal/service/appointment"
	"github.com/cabinetmed/cabinet_backend/internal/service/invoice"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
	"github.com/cabinetmed/cabinet_backend/internal/service/patient"
	"github.com/cabinetmed/cabinet_backend/internal/service/record"
	"github.com/cabinetmed/cabinet_backend/internal/service/user"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	UserSvc         user.Service
	PatientSvc      patient.Service
	AppointmentSvc  appointment.Service
	InvoiceSvc      invoice.Service
	RecordSvc       record.Service
	NotificationSvc notification.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	identity := middleware.Identity()

	// 3. Initialize Handlers
	userH := handler.NewUserHandler(r.p.UserSvc, r.p.NotificationSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	invoiceH := handler.NewInvoiceHandler(r.p.InvoiceSvc)
	recordH := handler.NewRecordHandler(r.p.RecordSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerUserRoutes(api, userH, identity)
	r.registerPatientRoutes(api, patientH, recordH, identity)
	r.registerAppointmentRoutes(api, appointmentH, identity)
	r.registerInvoiceRoutes(api, invoiceH, identity)
	r.registerRecordRoutes(api, recordH, identity)
	r.registerNotificationRoutes(api, notificationH, identity)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
