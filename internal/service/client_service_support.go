package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

type clientSupportService struct {
	bridge     adapter.BridgeAdapter
	cfg        config.ClientApp
	authorized atomic.Bool

	logger *logger.Logger
}

func NewClientSupportService(bridge adapter.BridgeAdapter, cfg config.ClientApp, logger *logger.Logger) ClientSupportService {
	return &clientSupportService{
		bridge: bridge,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *clientSupportService) Authorize(ctx context.Context) error {
	token, err := utils.GenerateSupportToken(s.cfg.TokenIssuer, s.cfg.Operator, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSupportService.Authorize").Msg("error generating support token")
		return fmt.Errorf("generate support token: %w", err)
	}

	s.bridge.SetToken(token)
	s.authorized.Store(true)
	s.logger.Info().Str("operator", s.cfg.Operator).Msg("support token issued")
	return nil
}

func (s *clientSupportService) Overview(ctx context.Context) (SupportOverview, error) {
	var overview SupportOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.bridge.Version(gctx)
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		overview.Version = v
		return nil
	})
	g.Go(func() error {
		r, err := s.bridge.Diagnostics(gctx)
		if err != nil {
			return fmt.Errorf("diagnostics: %w", err)
		}
		overview.Report = r
		return nil
	})
	g.Go(func() error {
		f, err := s.bridge.FormattedReport(gctx)
		if err != nil {
			return fmt.Errorf("formatted report: %w", err)
		}
		overview.Formatted = f
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "*clientSupportService.Overview").Msg("error fetching overview")
		return SupportOverview{}, err
	}

	return overview, nil
}

func (s *clientSupportService) Probe(ctx context.Context) (models.CapabilityProbeResult, error) {
	return s.bridge.CapabilityProbe(ctx)
}

func (s *clientSupportService) ProbeScript(ctx context.Context) (string, error) {
	return s.bridge.ProbeScript(ctx)
}

func (s *clientSupportService) RecentCapabilities(ctx context.Context, limit int) ([]models.StoredCapabilityResult, error) {
	if !s.authorized.Load() {
		return nil, ErrSupportNotAuthorized
	}
	return s.bridge.CapabilityResults(ctx, limit)
}

func (s *clientSupportService) RecentReports(ctx context.Context, limit int) ([]models.StoredReport, error) {
	if !s.authorized.Load() {
		return nil, ErrSupportNotAuthorized
	}
	return s.bridge.Reports(ctx, limit)
}
