// Package tui implements the support CLI screen: a live view of a running
// consent bridge built with bubbletea, bubbles and lipgloss.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/service"
	"github.com/MKhiriev/consent-bridge/models"
)

type TUI struct {
	support   service.ClientSupportService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SupportService == nil {
		return nil, errors.New("tui: support service is required")
	}
	return &TUI{support: services.SupportService, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the support screen until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newSupportModel(ctx, t.support, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui program failed")
		return err
	}

	if _, ok := finalModel.(supportModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
