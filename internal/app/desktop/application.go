package desktopapp

import (
	"context"
	"log/slog"

	"github.com/stratmaster/desktopd/internal/adapter/httpserver"
	"github.com/stratmaster/desktopd/internal/config"
	"github.com/stratmaster/desktopd/internal/infra/desktop"
	healthinfra "github.com/stratmaster/desktopd/internal/infra/health"
	"github.com/stratmaster/desktopd/internal/infra/state"
	"github.com/stratmaster/desktopd/internal/infra/system"
	healthuc "github.com/stratmaster/desktopd/internal/usecase/health"
	"github.com/stratmaster/desktopd/internal/usecase/profile"
)

type Application struct {
	cfg     *config.Config
	logger  *slog.Logger
	Profile *profile.Service
	Health  *healthuc.Service
	api     *httpserver.API
}

func NewApplication(cfg *config.Config, logger *slog.Logger) *Application {
	runtimeCfg := state.NewRuntimeConfig(cfg.APIBaseURL)
	client := healthinfra.NewClient(cfg.ProbeTimeout, logger)

	profileSvc := profile.NewService(system.NewProbe(), cfg.HardwareProfile, logger)
	healthSvc := healthuc.NewService(client, runtimeCfg, logger)
	shell := desktop.New(cfg.AppIdentifier, logger)

	return &Application{
		cfg:     cfg,
		logger:  logger,
		Profile: profileSvc,
		Health:  healthSvc,
		api:     httpserver.NewAPI(profileSvc, healthSvc, shell, cfg, logger),
	}
}

// Run serves the command API until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	server := httpserver.NewServer(a.cfg.Listen, a.api, a.cfg.AuthToken, a.cfg.ProbeTimeout, a.logger)
	a.logger.Info("command api starting", "listen", a.cfg.Listen, "api_base_url", a.Health.BaseURL())
	return server.Run(ctx)
}
