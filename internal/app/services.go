package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/cabinetmed/cabinet_backend/config"
	"github.com/cabinetmed/cabinet_backend/internal/notify"
	"github.com/cabinetmed/cabinet_backend/internal/repo"
	"github.com/cabinetmed/cabinet_backend/internal/scheduling"
	"github.com/cabinetmed/cabinet_backend/internal/service/appointment"
	"github.com/cabinetmed/cabinet_backend/internal/service/invoice"
	"github.com/cabinetmed/cabinet_backend/internal/service/notification"
	"github.com/cabinetmed/cabinet_backend/internal/service/patient"
	"github.com/cabinetmed/cabinet_backend/internal/service/record"
	"github.com/cabinetmed/cabinet_backend/internal/service/user"
	"github.com/cabinetmed/cabinet_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvidePatientService,
		ProvideAppointmentService,
		ProvideNotificationService,
		ProvideInvoiceService,
		ProvideRecordService,
		ProvideDispatcher,
		ProvideDispatchPool,
	),
)

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn, clock scheduling.Clock, workDay scheduling.WorkDay) appointment.Service {
	return appointment.New(db, nc, clock, workDay)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideInvoiceService(db *repo.Client, apptSvc appointment.Service, notifSvc notification.Service) invoice.Service {
	return invoice.New(db, apptSvc, notifSvc)
}

func ProvideRecordService(db *repo.Client) record.Service {
	return record.New(db)
}

func ProvideDispatcher(emailClient *email.Client, notifSvc notification.Service, db *repo.Client) *notify.Dispatcher {
	return notify.NewDispatcher(
		emailClient,
		notifSvc,
		notify.NewDirectory(db, notifSvc),
		slog.Default(),
	)
}

func ProvideDispatchPool(lc fx.Lifecycle, d *notify.Dispatcher, cfg *config.Config) *notify.Pool {
	pool := notify.NewPool(d, cfg.Reminders.DispatchWorkers, cfg.Reminders.DispatchQueue, slog.Default())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pool.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return pool.Stop(ctx)
		},
	})
	return pool
}
