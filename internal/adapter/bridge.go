package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

type httpBridgeAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPBridgeAdapter constructs the HTTP implementation of
// [BridgeAdapter] for the bridge at adapterCfg.HTTPAddress.
func NewHTTPBridgeAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (BridgeAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBridgeAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}, nil
}

// SetToken implements [BridgeAdapter].
func (h *httpBridgeAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBridgeAdapter) bearer() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version implements [BridgeAdapter] via GET /api/version.
func (h *httpBridgeAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo
	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/api/version")
	if err = h.check("version", resp, err); err != nil {
		return models.VersionInfo{}, err
	}
	return info, nil
}

// Diagnostics implements [BridgeAdapter] via GET /api/diagnostics.
func (h *httpBridgeAdapter) Diagnostics(ctx context.Context) (models.DiagnosticReport, error) {
	var report models.DiagnosticReport
	resp, err := h.client.R().SetContext(ctx).SetResult(&report).Get("/api/diagnostics")
	if err = h.check("diagnostics", resp, err); err != nil {
		return models.DiagnosticReport{}, err
	}
	return report, nil
}

// FormattedReport implements [BridgeAdapter] via GET /api/diagnostics/report.
func (h *httpBridgeAdapter) FormattedReport(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", utils.ContentTypeText).Get("/api/diagnostics/report")
	if err = h.check("formatted report", resp, err); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// CapabilityProbe implements [BridgeAdapter] via GET /api/diagnostics/probe.
func (h *httpBridgeAdapter) CapabilityProbe(ctx context.Context) (models.CapabilityProbeResult, error) {
	var result models.CapabilityProbeResult
	resp, err := h.client.R().SetContext(ctx).SetResult(&result).Get("/api/diagnostics/probe")
	if err = h.check("capability probe", resp, err); err != nil {
		return models.CapabilityProbeResult{}, err
	}
	return result, nil
}

// ProbeScript implements [BridgeAdapter] via GET /api/diagnostics/probe-script.
func (h *httpBridgeAdapter) ProbeScript(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", utils.ContentTypeJavaScript).Get("/api/diagnostics/probe-script")
	if err = h.check("probe script", resp, err); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// Reports implements [BridgeAdapter] via the protected
// GET /api/support/reports.
func (h *httpBridgeAdapter) Reports(ctx context.Context, limit int) ([]models.StoredReport, error) {
	var reports []models.StoredReport
	resp, err := h.authedRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&reports).
		Get("/api/support/reports")
	if err = h.check("reports", resp, err); err != nil {
		return nil, err
	}
	return reports, nil
}

// CapabilityResults implements [BridgeAdapter] via the protected
// GET /api/support/capabilities.
func (h *httpBridgeAdapter) CapabilityResults(ctx context.Context, limit int) ([]models.StoredCapabilityResult, error) {
	var results []models.StoredCapabilityResult
	resp, err := h.authedRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&results).
		Get("/api/support/capabilities")
	if err = h.check("capability results", resp, err); err != nil {
		return nil, err
	}
	return results, nil
}

func (h *httpBridgeAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.bearer(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpBridgeAdapter) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("bridge request failed")
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("op", op).Msg("bridge returned error")
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
