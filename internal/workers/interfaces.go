// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/consent-bridge/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns without blocking; the worker keeps going
// until ctx is cancelled or Stop is called. Stop blocks until the worker has
// exited and is a no-op for a worker that is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// DiagnosticsCollector produces a fresh diagnostic report.
type DiagnosticsCollector interface {
	GetDiagnosticInfo(ctx context.Context) models.DiagnosticReport
}

// ReportSaver persists diagnostic reports.
type ReportSaver interface {
	SaveReport(ctx context.Context, report models.DiagnosticReport) (models.StoredReport, error)
}
