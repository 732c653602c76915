package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/service"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SupportService == nil {
		return nil, fmt.Errorf("client app: support service is required")
	}
	if ui == nil {
		return nil, fmt.Errorf("client app: ui is required")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run issues the support token and hands control to the UI. A token that
// cannot be issued is logged and the UI still starts: the unprotected views
// work without one.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.SupportService.Authorize(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("continuing without support authorization")
	}

	return a.ui.Run(ctx)
}
