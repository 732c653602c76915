package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/crypto"
	"github.com/MKhiriev/consent-bridge/internal/diagnostics"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/platform"
	"github.com/MKhiriev/consent-bridge/internal/webview"
	"github.com/MKhiriev/consent-bridge/models"
)

type consentClient struct {
	native        adapter.NativeSDK
	engine        *diagnostics.Engine
	provider      *platform.Provider
	fingerprinter crypto.TokenFingerprinter
	listeners     *listenerRegistry

	logger *logger.Logger
}

func NewConsentClient(native adapter.NativeSDK, engine *diagnostics.Engine, provider *platform.Provider, fingerprinter crypto.TokenFingerprinter, logger *logger.Logger) ConsentClient {
	return &consentClient{
		native:        native,
		engine:        engine,
		provider:      provider,
		fingerprinter: fingerprinter,
		listeners:     &listenerRegistry{},
		logger:        logger,
	}
}

func (c *consentClient) Platform() models.Platform {
	return c.engine.Platform()
}

func (c *consentClient) Initialize(ctx context.Context, req models.InitializeRequest) error {
	log := logger.FromContext(ctx)

	if err := c.native.Initialize(ctx, req); err != nil {
		log.Err(err).Str("func", "*consentClient.Initialize").Str("service", string(req.Service)).Msg("native initialize failed")
		return fmt.Errorf("native initialize: %w", err)
	}

	log.Info().Str("service", string(req.Service)).Msg("native sdk initialized")
	return nil
}

func (c *consentClient) SetupUI(ctx context.Context) error {
	return c.passThrough(ctx, "setup ui", c.native.SetupUI)
}

func (c *consentClient) SetUserDeniedTracking(ctx context.Context) error {
	return c.passThrough(ctx, "set user denied tracking", c.native.SetUserDeniedTracking)
}

func (c *consentClient) ShowConsentScreen(ctx context.Context) error {
	return c.passThrough(ctx, "show consent screen", c.native.ShowConsentScreen)
}

func (c *consentClient) ClearConsent(ctx context.Context) error {
	return c.passThrough(ctx, "clear consent", c.native.ClearConsent)
}

func (c *consentClient) passThrough(ctx context.Context, op string, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("op", op).Msg("native call failed")
		return fmt.Errorf("native %s: %w", op, err)
	}
	return nil
}

func (c *consentClient) GetToken(ctx context.Context) (string, error) {
	token, err := c.native.GetToken(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*consentClient.GetToken").Msg("native token retrieval failed")
		return "", fmt.Errorf("%w: %w", ErrTokenRetrieval, err)
	}

	logger.FromContext(ctx).WithTokenFingerprint(c.fingerprinter.Fingerprint(token)).
		Debug().Msg("native token retrieved")
	return token, nil
}

func (c *consentClient) GetPlatformVersion(ctx context.Context) (string, error) {
	version, err := c.native.GetPlatformVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("native platform version: %w", err)
	}
	return version, nil
}

func (c *consentClient) AppendTokenURL(ctx context.Context, rawURL, token string) (string, error) {
	tokenized, err := c.native.AppendTokenURL(ctx, rawURL, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*consentClient.AppendTokenURL").Msg("native append token failed")
		return "", fmt.Errorf("native append token url: %w", err)
	}
	return tokenized, nil
}

func (c *consentClient) GetConsentDataForWebView(ctx context.Context) (models.ConsentSnapshot, error) {
	token, err := c.GetToken(ctx)
	if err != nil {
		return models.ConsentSnapshot{}, err
	}

	return webview.FormatSnapshot(token, c.Platform()), nil
}

func (c *consentClient) GetWebViewInjectionScript(ctx context.Context) (string, error) {
	snapshot, err := c.GetConsentDataForWebView(ctx)
	if err != nil {
		return "", err
	}

	return webview.GenerateInjectionScript(snapshot), nil
}

func (c *consentClient) SyncConsentWithWebView(ctx context.Context, baseURL string) (string, error) {
	token, err := c.GetToken(ctx)
	if err != nil {
		return "", err
	}

	return webview.TokenizeURL(baseURL, token, c.Platform())
}

func (c *consentClient) ValidateWebViewSyncResult(message any) models.SyncValidationResult {
	return webview.ValidateSyncResult(message)
}

func (c *consentClient) GetEmbedConfig() models.WebViewEmbedConfig {
	return c.provider.EmbedConfig(c.Platform())
}

func (c *consentClient) GetEmbedProps() models.WebViewProps {
	return c.provider.EmbedProps(c.Platform())
}

func (c *consentClient) UserAgent() (string, bool) {
	return c.provider.UserAgent(c.Platform())
}

func (c *consentClient) InjectionTime() string {
	return c.provider.InjectionTime()
}

func (c *consentClient) GetDiagnosticInfo(ctx context.Context) models.DiagnosticReport {
	return c.engine.Collect(ctx, c.native.GetToken, c.native.GetPlatformVersion)
}

func (c *consentClient) TestWebViewCookieSync(ctx context.Context) models.CapabilityProbeResult {
	return c.engine.RunCapabilityProbe(ctx, c.native.GetToken)
}

func (c *consentClient) GetWebViewCapabilityTestScript() string {
	return diagnostics.GenerateCapabilityProbeScript()
}

func (c *consentClient) FormatDiagnosticReport(report models.DiagnosticReport) string {
	return diagnostics.FormatReport(report)
}

func (c *consentClient) AddListener(listener EventListener) func() {
	return c.listeners.add(listener)
}

func (c *consentClient) RemoveListeners() {
	c.listeners.clear()
}

func (c *consentClient) Dispatch(ctx context.Context, event models.ConsentEvent) error {
	logger.FromContext(ctx).Debug().
		Str("event", string(event.Name)).
		Int("listeners", c.listeners.len()).
		Msg("dispatching consent event")

	c.listeners.dispatch(ctx, event)
	return nil
}
