package di

import (
	"go.uber.org/fx"

	"github.com/bluedot/paylink/internal/adapter/mail"
	"github.com/bluedot/paylink/internal/adapter/status"
	"github.com/bluedot/paylink/internal/app"
	"github.com/bluedot/paylink/internal/config"
	"github.com/bluedot/paylink/internal/currency"
	"github.com/bluedot/paylink/internal/logger"
	"github.com/bluedot/paylink/internal/notify"
	"github.com/bluedot/paylink/internal/server/http/handlers"
	"github.com/bluedot/paylink/internal/server/http/router"
	"github.com/bluedot/paylink/internal/storage/memory"
	"github.com/bluedot/paylink/internal/usecase"
	"github.com/bluedot/paylink/internal/worker"
)

// Module assembles the backend service graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		memory.Module,
		currency.Module,
		usecase.Module,
		mail.Module,
		notify.Module,
		fx.Provide(func(f *app.BillingFacade) handlers.BillingFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// WatchModule assembles the decision watch client graph.
func WatchModule(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		status.Module,
		worker.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
