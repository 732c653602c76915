// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of the consent bridge.
//
// [NativeSDK] is the boundary to the native consent SDK, reached through the
// host application's local HTTP bridge. [BridgeAdapter] is what the support
// CLI uses to talk to a running consent bridge.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/consent-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NativeSDK is the native consent SDK as seen by the bridge. Every call may
// fail; the bridge decides per operation whether a failure has a default.
type NativeSDK interface {
	// GetToken returns the current consent token, "" when none was issued.
	GetToken(ctx context.Context) (string, error)

	// GetPlatformVersion returns the raw OS version string.
	GetPlatformVersion(ctx context.Context) (string, error)

	// Initialize starts the SDK for the given service and client.
	Initialize(ctx context.Context, req models.InitializeRequest) error

	// SetupUI prepares the consent UI.
	SetupUI(ctx context.Context) error

	// SetUserDeniedTracking records that the user refused app tracking.
	SetUserDeniedTracking(ctx context.Context) error

	// ShowConsentScreen displays the consent popup.
	ShowConsentScreen(ctx context.Context) error

	// ClearConsent erases the stored consent.
	ClearConsent(ctx context.Context) error

	// AppendTokenURL lets the SDK append its token to rawURL.
	AppendTokenURL(ctx context.Context, rawURL, token string) (string, error)
}

// BridgeAdapter is the support CLI's view of a running consent bridge.
type BridgeAdapter interface {
	// SetToken stores the support bearer token attached to protected
	// requests.
	SetToken(token string)

	// Version returns the bridge build metadata.
	Version(ctx context.Context) (models.VersionInfo, error)

	// Diagnostics collects a fresh diagnostic report.
	Diagnostics(ctx context.Context) (models.DiagnosticReport, error)

	// FormattedReport returns the support-ticket text block.
	FormattedReport(ctx context.Context) (string, error)

	// CapabilityProbe runs the host-side capability probe.
	CapabilityProbe(ctx context.Context) (models.CapabilityProbeResult, error)

	// ProbeScript returns the in-view capability probe script.
	ProbeScript(ctx context.Context) (string, error)

	// Reports lists persisted diagnostic reports, newest first.
	Reports(ctx context.Context, limit int) ([]models.StoredReport, error)

	// CapabilityResults lists persisted in-view probe results, newest first.
	CapabilityResults(ctx context.Context, limit int) ([]models.StoredCapabilityResult, error)
}
