// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/consent-bridge/models"
)

// EventListener receives consent lifecycle events forwarded by the native SDK.
type EventListener func(ctx context.Context, event models.ConsentEvent)

// ConsentClient is the bridge's facade over the native consent SDK and the
// web view sync core.
type ConsentClient interface {
	// Platform is the host platform the client was configured for.
	Platform() models.Platform

	Initialize(ctx context.Context, req models.InitializeRequest) error
	SetupUI(ctx context.Context) error
	SetUserDeniedTracking(ctx context.Context) error
	ShowConsentScreen(ctx context.Context) error
	ClearConsent(ctx context.Context) error

	// GetToken returns the native token. Failures are wrapped in
	// [ErrTokenRetrieval].
	GetToken(ctx context.Context) (string, error)
	GetPlatformVersion(ctx context.Context) (string, error)
	AppendTokenURL(ctx context.Context, rawURL, token string) (string, error)

	// GetConsentDataForWebView fetches the token and formats a fresh
	// snapshot for the web view.
	GetConsentDataForWebView(ctx context.Context) (models.ConsentSnapshot, error)
	// GetWebViewInjectionScript returns the script that installs the
	// current snapshot inside the web view.
	GetWebViewInjectionScript(ctx context.Context) (string, error)
	// SyncConsentWithWebView appends the current token to baseURL.
	SyncConsentWithWebView(ctx context.Context, baseURL string) (string, error)
	// ValidateWebViewSyncResult parses a message posted back by the web view.
	ValidateWebViewSyncResult(message any) models.SyncValidationResult

	GetEmbedConfig() models.WebViewEmbedConfig
	GetEmbedProps() models.WebViewProps
	UserAgent() (string, bool)
	InjectionTime() string

	GetDiagnosticInfo(ctx context.Context) models.DiagnosticReport
	TestWebViewCookieSync(ctx context.Context) models.CapabilityProbeResult
	GetWebViewCapabilityTestScript() string
	FormatDiagnosticReport(report models.DiagnosticReport) string

	// AddListener registers listener and returns its disposer. Disposers
	// are idempotent.
	AddListener(listener EventListener) (dispose func())
	// RemoveListeners drops every registered listener.
	RemoveListeners()
	// Dispatch delivers event to the listeners in registration order.
	Dispatch(ctx context.Context, event models.ConsentEvent) error
}

// ConsentClientWrapper defines middleware composition for ConsentClient.
type ConsentClientWrapper interface {
	Wrap(ConsentClient) ConsentClient
}

// SupportService persists what support tooling needs to investigate a
// failing web view integration.
type SupportService interface {
	// RecordWebViewMessage classifies and stores a message from the web view.
	RecordWebViewMessage(ctx context.Context, message any) (models.StoredMessage, error)

	SaveReport(ctx context.Context, report models.DiagnosticReport) (models.StoredReport, error)
	ListReports(ctx context.Context, limit int) ([]models.StoredReport, error)
	ListSyncResults(ctx context.Context, limit int) ([]models.StoredSyncResult, error)
	ListCapabilityResults(ctx context.Context, limit int) ([]models.StoredCapabilityResult, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
