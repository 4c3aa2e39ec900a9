package app

import (
	"go.uber.org/fx"

	"github.com/sosportal/portal/auth"
	"github.com/sosportal/portal/config"
	"github.com/sosportal/portal/form"
	"github.com/sosportal/portal/httpclient"
	"github.com/sosportal/portal/logger"
	"github.com/sosportal/portal/patients"
	"github.com/sosportal/portal/profile"
)

// Dependencies returns the constructors of the portal DI graph
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			config.Load,
			logger.NewProductionLogger,
			logger.Suggar,
			httpclient.New,
			patients.NewConfig,
			patients.NewRepository,
			patients.NewService,
			form.NewController,
			auth.NewConfig,
			auth.NewClient,
			auth.NewSession,
			auth.NewService,
			profile.NewConfig,
			profile.NewClient,
		),
	}
}
