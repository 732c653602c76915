package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

// Native host bridge endpoints.
const (
	pathNativeToken           = "/native/token"
	pathNativePlatformVersion = "/native/platform-version"
	pathNativeInitialize      = "/native/initialize"
	pathNativeSetupUI         = "/native/ui/setup"
	pathNativeDenyTracking    = "/native/tracking/deny"
	pathNativeShowConsent     = "/native/consent/show"
	pathNativeClearConsent    = "/native/consent/clear"
	pathNativeAppendTokenURL  = "/native/url/append"
)

type httpNativeAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPNativeAdapter constructs the HTTP implementation of [NativeSDK]
// talking to the host bridge at adapterCfg.NativeAddress.
//
// Returns an error wrapping [ErrInvalidAddress] if the address is empty or
// cannot be parsed.
func NewHTTPNativeAdapter(adapterCfg config.Adapter, log *logger.Logger) (NativeSDK, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.NativeAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid native address: %w", err)
	}

	return &httpNativeAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}, nil
}

// GetToken implements [NativeSDK] via GET /native/token.
func (h *httpNativeAdapter) GetToken(ctx context.Context) (string, error) {
	var body models.TokenResponse
	if err := h.get(ctx, pathNativeToken, &body); err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}

	return body.Token, nil
}

// GetPlatformVersion implements [NativeSDK] via GET /native/platform-version.
func (h *httpNativeAdapter) GetPlatformVersion(ctx context.Context) (string, error) {
	var body models.PlatformVersionResponse
	if err := h.get(ctx, pathNativePlatformVersion, &body); err != nil {
		return "", fmt.Errorf("get platform version: %w", err)
	}

	return body.Version, nil
}

// Initialize implements [NativeSDK] via POST /native/initialize.
func (h *httpNativeAdapter) Initialize(ctx context.Context, req models.InitializeRequest) error {
	if err := h.post(ctx, pathNativeInitialize, req, nil); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	return nil
}

func (h *httpNativeAdapter) SetupUI(ctx context.Context) error {
	if err := h.post(ctx, pathNativeSetupUI, nil, nil); err != nil {
		return fmt.Errorf("setup ui: %w", err)
	}
	return nil
}

func (h *httpNativeAdapter) SetUserDeniedTracking(ctx context.Context) error {
	if err := h.post(ctx, pathNativeDenyTracking, nil, nil); err != nil {
		return fmt.Errorf("set user denied tracking: %w", err)
	}
	return nil
}

func (h *httpNativeAdapter) ShowConsentScreen(ctx context.Context) error {
	if err := h.post(ctx, pathNativeShowConsent, nil, nil); err != nil {
		return fmt.Errorf("show consent screen: %w", err)
	}
	return nil
}

func (h *httpNativeAdapter) ClearConsent(ctx context.Context) error {
	if err := h.post(ctx, pathNativeClearConsent, nil, nil); err != nil {
		return fmt.Errorf("clear consent: %w", err)
	}
	return nil
}

// AppendTokenURL implements [NativeSDK] via POST /native/url/append.
func (h *httpNativeAdapter) AppendTokenURL(ctx context.Context, rawURL, token string) (string, error) {
	var body models.URLResponse
	req := models.AppendTokenURLRequest{URL: rawURL, Token: token}
	if err := h.post(ctx, pathNativeAppendTokenURL, req, &body); err != nil {
		return "", fmt.Errorf("append token url: %w", err)
	}

	return body.URL, nil
}

func (h *httpNativeAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)

	return h.finish(path, resp, err)
}

func (h *httpNativeAdapter) post(ctx context.Context, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", utils.ContentTypeJSON).SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)

	return h.finish(path, resp, err)
}

func (h *httpNativeAdapter) finish(path string, resp *resty.Response, err error) error {
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("native host request failed")
		return fmt.Errorf("%w: %w", ErrNativeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("native host returned error")
		return err
	}

	h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("native host request completed")
	return nil
}
