package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/consent-bridge/internal/crypto"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/store"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/internal/webview"
	"github.com/MKhiriev/consent-bridge/models"
)

type supportService struct {
	repository    store.ReportRepository
	fingerprinter crypto.TokenFingerprinter
	ids           utils.IDGenerator
	now           func() time.Time

	logger *logger.Logger
}

func NewSupportService(repository store.ReportRepository, fingerprinter crypto.TokenFingerprinter, ids utils.IDGenerator, logger *logger.Logger) SupportService {
	return &supportService{
		repository:    repository,
		fingerprinter: fingerprinter,
		ids:           ids,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *supportService) RecordWebViewMessage(ctx context.Context, message any) (models.StoredMessage, error) {
	log := logger.FromContext(ctx)

	parsed, err := webview.ParseMessage(message)
	if err != nil {
		log.Warn().Err(err).Str("func", "*supportService.RecordWebViewMessage").Msg("rejected web view message")
		return models.StoredMessage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	id := s.ids.Generate()
	receivedAt := s.now().UTC()

	switch parsed.Kind {
	case models.WebViewMessageCapability:
		err = s.repository.SaveCapabilityResult(ctx, models.StoredCapabilityResult{
			ID:         id,
			ReceivedAt: receivedAt,
			Results:    parsed.Capability.Results,
		})
	default:
		err = s.saveSyncResult(ctx, id, receivedAt, *parsed.SyncResult)
	}
	if err != nil {
		return models.StoredMessage{}, err
	}

	log.Info().Str("kind", string(parsed.Kind)).Str("id", id).Msg("web view message recorded")
	return models.StoredMessage{ID: id, Message: parsed}, nil
}

func (s *supportService) saveSyncResult(ctx context.Context, id string, receivedAt time.Time, result models.SyncValidationResult) error {
	stored := models.StoredSyncResult{
		ID:         id,
		ReceivedAt: receivedAt,
		Success:    result.Success,
		Timestamp:  result.Timestamp,
	}
	if result.Token != nil {
		stored.TokenFingerprint = s.fingerprinter.Fingerprint(*result.Token)
	}
	if result.Error != nil {
		stored.Error = *result.Error
	}

	if !result.Success {
		logger.FromContext(ctx).WithTokenFingerprint(stored.TokenFingerprint).
			Warn().Str("error", stored.Error).Msg("web view reported a failed consent sync")
	}

	return s.repository.SaveSyncResult(ctx, stored)
}

func (s *supportService) SaveReport(ctx context.Context, report models.DiagnosticReport) (models.StoredReport, error) {
	stored := models.StoredReport{
		ID:        s.ids.Generate(),
		CreatedAt: s.now().UTC(),
		Report:    report,
	}

	if err := s.repository.SaveReport(ctx, stored); err != nil {
		return models.StoredReport{}, err
	}

	return stored, nil
}

func (s *supportService) ListReports(ctx context.Context, limit int) ([]models.StoredReport, error) {
	return s.repository.ListReports(ctx, limit)
}

func (s *supportService) ListSyncResults(ctx context.Context, limit int) ([]models.StoredSyncResult, error) {
	return s.repository.ListSyncResults(ctx, limit)
}

func (s *supportService) ListCapabilityResults(ctx context.Context, limit int) ([]models.StoredCapabilityResult, error) {
	return s.repository.ListCapabilityResults(ctx, limit)
}
