// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/models"
)

const (
	// DefaultListLimit is used by List methods when the caller passes a
	// non-positive limit.
	DefaultListLimit = 50

	maxAttempts = 3
)

const (
	tableDiagnosticReports = "diagnostic_reports"
	tableSyncResults       = "sync_results"
	tableCapabilityResults = "capability_results"
)

var (
	reportColumns = []string{
		"id", "created_at", "platform", "platform_version", "sdk_version",
		"has_token", "cookie_sync_capable", "isolated_storage",
	}
	syncResultColumns = []string{
		"id", "received_at", "success", "token_fingerprint", "error", "timestamp_ms",
	}
	capabilityResultColumns = []string{
		"id", "received_at",
		"cookies_readable", "cookies_writable", "cookies_axeptio_found", "cookies_error",
		"storage_available", "storage_writable", "storage_axeptio_found", "storage_error",
		"probe_timestamp", "user_agent",
	}
)

// reportRepository is the SQL implementation of [ReportRepository].
type reportRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewReportRepository constructs a [ReportRepository] on top of db.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reportRepository) SaveReport(ctx context.Context, report models.StoredReport) error {
	query, args, err := r.db.builder.
		Insert(tableDiagnosticReports).
		Columns(reportColumns...).
		Values(
			report.ID,
			report.CreatedAt.UTC(),
			string(report.Report.Platform),
			report.Report.PlatformVersion,
			report.Report.SDKVersion,
			report.Report.HasToken,
			report.Report.WebViewSupport.CookieSyncCapable,
			report.Report.WebViewSupport.IsolatedStorage,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*reportRepository.SaveReport", query, args)
}

func (r *reportRepository) ListReports(ctx context.Context, limit int) ([]models.StoredReport, error) {
	query, args, err := r.db.builder.
		Select(reportColumns...).
		From(tableDiagnosticReports).
		OrderBy("created_at DESC").
		Limit(listLimit(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reports []models.StoredReport
	err = r.query(ctx, "*reportRepository.ListReports", query, args, func(rows *sql.Rows) error {
		var (
			report   models.StoredReport
			platform string
		)
		if err := rows.Scan(
			&report.ID,
			&report.CreatedAt,
			&platform,
			&report.Report.PlatformVersion,
			&report.Report.SDKVersion,
			&report.Report.HasToken,
			&report.Report.WebViewSupport.CookieSyncCapable,
			&report.Report.WebViewSupport.IsolatedStorage,
		); err != nil {
			return err
		}
		report.Report.Platform = models.Platform(platform)
		reports = append(reports, report)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *reportRepository) SaveSyncResult(ctx context.Context, result models.StoredSyncResult) error {
	query, args, err := r.db.builder.
		Insert(tableSyncResults).
		Columns(syncResultColumns...).
		Values(
			result.ID,
			result.ReceivedAt.UTC(),
			result.Success,
			nullString(result.TokenFingerprint),
			nullString(result.Error),
			result.Timestamp,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*reportRepository.SaveSyncResult", query, args)
}

func (r *reportRepository) ListSyncResults(ctx context.Context, limit int) ([]models.StoredSyncResult, error) {
	query, args, err := r.db.builder.
		Select(syncResultColumns...).
		From(tableSyncResults).
		OrderBy("received_at DESC").
		Limit(listLimit(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var results []models.StoredSyncResult
	err = r.query(ctx, "*reportRepository.ListSyncResults", query, args, func(rows *sql.Rows) error {
		var (
			result             models.StoredSyncResult
			fingerprint, errMsg sql.NullString
		)
		if err := rows.Scan(
			&result.ID,
			&result.ReceivedAt,
			&result.Success,
			&fingerprint,
			&errMsg,
			&result.Timestamp,
		); err != nil {
			return err
		}
		result.TokenFingerprint = fingerprint.String
		result.Error = errMsg.String
		results = append(results, result)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *reportRepository) SaveCapabilityResult(ctx context.Context, result models.StoredCapabilityResult) error {
	res := result.Results
	query, args, err := r.db.builder.
		Insert(tableCapabilityResults).
		Columns(capabilityResultColumns...).
		Values(
			result.ID,
			result.ReceivedAt.UTC(),
			res.Cookies.Readable,
			res.Cookies.Writable,
			res.Cookies.AxeptioFound,
			nullString(res.Cookies.Error),
			res.LocalStorage.Available,
			res.LocalStorage.Writable,
			res.LocalStorage.AxeptioFound,
			nullString(res.LocalStorage.Error),
			res.Timestamp,
			res.UserAgent,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*reportRepository.SaveCapabilityResult", query, args)
}

func (r *reportRepository) ListCapabilityResults(ctx context.Context, limit int) ([]models.StoredCapabilityResult, error) {
	query, args, err := r.db.builder.
		Select(capabilityResultColumns...).
		From(tableCapabilityResults).
		OrderBy("received_at DESC").
		Limit(listLimit(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var results []models.StoredCapabilityResult
	err = r.query(ctx, "*reportRepository.ListCapabilityResults", query, args, func(rows *sql.Rows) error {
		var (
			result                 models.StoredCapabilityResult
			cookiesErr, storageErr sql.NullString
		)
		res := &result.Results
		if err := rows.Scan(
			&result.ID,
			&result.ReceivedAt,
			&res.Cookies.Readable,
			&res.Cookies.Writable,
			&res.Cookies.AxeptioFound,
			&cookiesErr,
			&res.LocalStorage.Available,
			&res.LocalStorage.Writable,
			&res.LocalStorage.AxeptioFound,
			&storageErr,
			&res.Timestamp,
			&res.UserAgent,
		); err != nil {
			return err
		}
		res.Cookies.Error = cookiesErr.String
		res.LocalStorage.Error = storageErr.String
		results = append(results, result)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// exec runs an INSERT, retrying transient failures.
func (r *reportRepository) exec(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	err := r.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err == nil {
		return nil
	}

	log.Err(err).Str("func", fn).Msg("error executing statement")
	if r.isUniqueViolation(err) {
		return ErrReportAlreadyExists
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// query runs a SELECT and hands every row to scan.
func (r *reportRepository) query(ctx context.Context, fn, query string, args []any, scan func(*sql.Rows) error) error {
	log := logger.FromContext(ctx)

	var rows *sql.Rows
	err := r.withRetry(ctx, func() error {
		var err error
		rows, err = r.db.QueryContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning row")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating rows")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func (r *reportRepository) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if r.db.errorClassificator == nil || r.db.errorClassificator.Classify(err) != Retryable || attempt == maxAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}

	return err
}

func (r *reportRepository) isUniqueViolation(err error) bool {
	return isPostgresUniqueViolation(err) || isSQLiteUniqueViolation(err)
}

func listLimit(limit int) uint64 {
	if limit <= 0 {
		return DefaultListLimit
	}
	return uint64(limit)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
