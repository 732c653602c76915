// Package store persists diagnostic reports and messages received from the
// embedded web view. SQLite (mattn/go-sqlite3) and PostgreSQL (pgx) are
// supported through database/sql; queries are built with squirrel.
package store

import (
	"context"

	"github.com/MKhiriev/consent-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ReportRepository stores support records. List methods return the newest
// records first; a non-positive limit selects [DefaultListLimit].
type ReportRepository interface {
	SaveReport(ctx context.Context, report models.StoredReport) error
	ListReports(ctx context.Context, limit int) ([]models.StoredReport, error)

	SaveSyncResult(ctx context.Context, result models.StoredSyncResult) error
	ListSyncResults(ctx context.Context, limit int) ([]models.StoredSyncResult, error)

	SaveCapabilityResult(ctx context.Context, result models.StoredCapabilityResult) error
	ListCapabilityResults(ctx context.Context, limit int) ([]models.StoredCapabilityResult, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
