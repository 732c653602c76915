package service

import (
	"context"

	"github.com/MKhiriev/consent-bridge/models"
)

// SupportOverview is everything the support CLI shows on its first screen.
type SupportOverview struct {
	Version   models.VersionInfo
	Report    models.DiagnosticReport
	Formatted string
}

// ClientSupportService is the support CLI's use of a running bridge.
type ClientSupportService interface {
	// Authorize issues a support token for the configured operator and
	// attaches it to subsequent protected requests.
	Authorize(ctx context.Context) error

	// Overview fetches version, diagnostics and the formatted report
	// concurrently.
	Overview(ctx context.Context) (SupportOverview, error)

	// Probe runs the host-side capability probe.
	Probe(ctx context.Context) (models.CapabilityProbeResult, error)

	// ProbeScript returns the in-view probe script to paste into a web view
	// debugger.
	ProbeScript(ctx context.Context) (string, error)

	// RecentCapabilities lists the latest in-view probe results. Requires
	// Authorize.
	RecentCapabilities(ctx context.Context, limit int) ([]models.StoredCapabilityResult, error)

	// RecentReports lists the latest stored diagnostic reports. Requires
	// Authorize.
	RecentReports(ctx context.Context, limit int) ([]models.StoredReport, error)
}
