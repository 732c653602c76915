package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/models"
)

type stubCollector struct {
	report models.DiagnosticReport
}

func (s *stubCollector) GetDiagnosticInfo(context.Context) models.DiagnosticReport {
	return s.report
}

type recordingSaver struct {
	mu      sync.Mutex
	reports []models.DiagnosticReport
	err     error
	saved   chan struct{}
}

func newRecordingSaver(err error) *recordingSaver {
	return &recordingSaver{err: err, saved: make(chan struct{}, 16)}
}

func (r *recordingSaver) SaveReport(_ context.Context, report models.DiagnosticReport) (models.StoredReport, error) {
	r.mu.Lock()
	r.reports = append(r.reports, report)
	r.mu.Unlock()

	select {
	case r.saved <- struct{}{}:
	default:
	}

	if r.err != nil {
		return models.StoredReport{}, r.err
	}
	return models.StoredReport{ID: "id", Report: report}, nil
}

func (r *recordingSaver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

func waitSaved(t *testing.T, r *recordingSaver, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.saved:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for save #%d", i+1)
		}
	}
}

func TestDiagnosticsJob_SnapshotsImmediatelyAndPeriodically(t *testing.T) {
	defer goleak.VerifyNone(t)

	report := models.DiagnosticReport{Platform: models.PlatformAndroid, PlatformVersion: "13", HasToken: true}
	saver := newRecordingSaver(nil)
	job := NewDiagnosticsJob(&stubCollector{report: report}, saver, 10*time.Millisecond, logger.Nop())

	job.Run(context.Background())
	waitSaved(t, saver, 3)
	job.Stop()

	require.GreaterOrEqual(t, saver.count(), 3)
	saver.mu.Lock()
	assert.Equal(t, report, saver.reports[0])
	saver.mu.Unlock()
}

func TestDiagnosticsJob_DisabledByNonPositiveInterval(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, interval := range []time.Duration{0, -time.Second} {
		saver := newRecordingSaver(nil)
		job := NewDiagnosticsJob(&stubCollector{}, saver, interval, logger.Nop())

		job.Run(context.Background())
		job.Stop()

		assert.Zero(t, saver.count(), "interval %v", interval)
	}
}

func TestDiagnosticsJob_KeepsRunningAfterSaveError(t *testing.T) {
	defer goleak.VerifyNone(t)

	saver := newRecordingSaver(errors.New("database is locked"))
	job := NewDiagnosticsJob(&stubCollector{}, saver, 10*time.Millisecond, logger.Nop())

	job.Run(context.Background())
	waitSaved(t, saver, 2)
	job.Stop()
}

func TestDiagnosticsJob_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	saver := newRecordingSaver(nil)
	job := NewDiagnosticsJob(&stubCollector{}, saver, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Run(ctx)
	waitSaved(t, saver, 1)
	cancel()

	// Stop after cancellation only waits for the goroutine
	job.Stop()
	assert.Equal(t, 1, saver.count())
}

func TestDiagnosticsJob_RunRestarts(t *testing.T) {
	defer goleak.VerifyNone(t)

	saver := newRecordingSaver(nil)
	job := NewDiagnosticsJob(&stubCollector{}, saver, time.Hour, logger.Nop())

	job.Run(context.Background())
	waitSaved(t, saver, 1)
	job.Run(context.Background())
	waitSaved(t, saver, 1)
	job.Stop()

	assert.Equal(t, 2, saver.count())
}

func TestDiagnosticsJob_StopWithoutRun(t *testing.T) {
	job := NewDiagnosticsJob(&stubCollector{}, newRecordingSaver(nil), time.Minute, logger.Nop())
	job.Stop()
}
