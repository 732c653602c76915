package service

import (
	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/crypto"
	"github.com/MKhiriev/consent-bridge/internal/diagnostics"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/platform"
	"github.com/MKhiriev/consent-bridge/internal/store"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

type Services struct {
	ConsentClient  ConsentClient
	SupportService SupportService
	AppInfoService AppInfoService
}

func NewServices(native adapter.NativeSDK, storages *store.Storages, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	info, err := cfg.App.PlatformInfo()
	if err != nil {
		return nil, err
	}

	provider := platform.NewProvider(cfg.App.IsolationMajorVersion)
	engine := diagnostics.NewEngine(info, provider, logger)
	fingerprinter := crypto.NewTokenFingerprinter(cfg.App.FingerprintKey)

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	client := NewConsentValidationService().Wrap(
		NewConsentClient(native, engine, provider, fingerprinter, logger),
	)

	return &Services{
		ConsentClient:  client,
		SupportService: NewSupportService(storages.ReportRepository, fingerprinter, utils.NewUUIDGenerator(), logger),
		AppInfoService: appInfo,
	}, nil
}
