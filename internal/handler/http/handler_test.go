package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/mock"
	"github.com/MKhiriev/consent-bridge/internal/service"
	"github.com/MKhiriev/consent-bridge/internal/store"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "consent-bridge-test"
)

// testEnv is a router backed by real services whose native SDK and
// repository are mocks.
type testEnv struct {
	handler *Handler
	router  *chi.Mux
	native  *mock.MockNativeSDK
	repo    *mock.MockReportRepository
}

func newTestEnv(t *testing.T, platform string) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	native := mock.NewMockNativeSDK(ctrl)
	repo := mock.NewMockReportRepository(ctrl)

	cfg := config.StructuredConfig{
		App: config.App{
			Platform:        platform,
			PlatformVersion: "17.5",
			FingerprintKey:  "fingerprint-key",
			TokenSignKey:    testSignKey,
			TokenIssuer:     testIssuer,
		},
	}

	services, err := service.NewServices(
		native,
		&store.Storages{ReportRepository: repo},
		models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123"),
		cfg,
		logger.Nop(),
	)
	require.NoError(t, err)

	h := NewHandler(services, cfg.App, logger.Nop())
	return &testEnv{
		handler: h,
		router:  h.Init(),
		native:  native,
		repo:    repo,
	}
}

func (e *testEnv) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func supportToken(t *testing.T, signKey, issuer string) string {
	t.Helper()

	token, err := utils.GenerateSupportToken(issuer, "support-operator", time.Minute, signKey)
	require.NoError(t, err)
	return "Bearer " + token
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.App{TokenSignKey: "key", TokenIssuer: "iss"}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, "key", h.signKey)
	assert.Equal(t, "iss", h.issuer)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, logger.Nop())
	router := h.Init()

	expected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/api/webview/snapshot"},
		{http.MethodGet, "/api/webview/script"},
		{http.MethodGet, "/api/webview/url"},
		{http.MethodGet, "/api/webview/config"},
		{http.MethodGet, "/api/webview/props"},
		{http.MethodGet, "/api/webview/injection"},
		{http.MethodPost, "/api/webview/messages"},
		{http.MethodGet, "/api/diagnostics/"},
		{http.MethodGet, "/api/diagnostics/report"},
		{http.MethodGet, "/api/diagnostics/probe"},
		{http.MethodGet, "/api/diagnostics/probe-script"},
		{http.MethodPost, "/api/consent/initialize"},
		{http.MethodPost, "/api/consent/setup-ui"},
		{http.MethodPost, "/api/consent/deny-tracking"},
		{http.MethodPost, "/api/consent/show"},
		{http.MethodPost, "/api/consent/clear"},
		{http.MethodGet, "/api/consent/token"},
		{http.MethodGet, "/api/consent/platform-version"},
		{http.MethodPost, "/api/consent/append-token-url"},
		{http.MethodPost, "/api/events/{event}"},
		{http.MethodGet, "/api/support/reports"},
		{http.MethodGet, "/api/support/sync-results"},
		{http.MethodGet, "/api/support/capabilities"},
	}

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, tc := range expected {
		assert.True(t, registered[tc.method+" "+tc.path], "route not registered: %s %s", tc.method, tc.path)
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	env := newTestEnv(t, "ios")

	rec := env.do(http.MethodGet, "/api/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns405WithAllow(t *testing.T) {
	env := newTestEnv(t, "ios")

	rec := env.do(http.MethodPost, "/api/consent/token", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	env := newTestEnv(t, "android")

	rec := env.do(http.MethodGet, "/api/webview/config", "", traceIDHeader, "trace-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	// nil services make every handler panic.
	h := NewHandler(&service.Services{}, config.App{}, logger.Nop())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/webview/config", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
