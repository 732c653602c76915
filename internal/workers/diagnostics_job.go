// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/consent-bridge/internal/logger"
)

// DiagnosticsJob periodically collects a diagnostic report and stores it, so
// that support can see how the bridge looked before an incident.
type DiagnosticsJob struct {
	collector DiagnosticsCollector
	saver     ReportSaver
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDiagnosticsJob creates an idle job. A non-positive interval disables it:
// Run then does nothing.
func NewDiagnosticsJob(collector DiagnosticsCollector, saver ReportSaver, interval time.Duration, logger *logger.Logger) *DiagnosticsJob {
	return &DiagnosticsJob{
		collector: collector,
		saver:     saver,
		interval:  interval,
		logger:    logger,
	}
}

// Run stops any previous run, takes a snapshot immediately and then one every
// interval until ctx is cancelled or Stop is called.
func (j *DiagnosticsJob) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Msg("diagnostics job disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.snapshot(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.snapshot(jobCtx)
			}
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("diagnostics job started")
}

// Stop cancels the running job and waits for it to exit.
func (j *DiagnosticsJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// snapshot errors are logged; the next tick tries again
func (j *DiagnosticsJob) snapshot(ctx context.Context) {
	report := j.collector.GetDiagnosticInfo(ctx)

	stored, err := j.saver.SaveReport(ctx, report)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Str("func", "*DiagnosticsJob.snapshot").Msg("error saving diagnostic report")
		}
		return
	}

	j.logger.Debug().
		Str("id", stored.ID).
		Bool("has_token", report.HasToken).
		Str("platform_version", report.PlatformVersion).
		Msg("diagnostic report saved")
}
