package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/diagnostics"
	"github.com/MKhiriev/consent-bridge/internal/webview"
	"github.com/MKhiriev/consent-bridge/models"
)

func TestGetSnapshot(t *testing.T) {
	t.Run("token present", func(t *testing.T) {
		env := newTestEnv(t, "ios")
		env.native.EXPECT().GetToken(gomock.Any()).Return("tok", nil)

		rec := env.do(http.MethodGet, "/api/webview/snapshot", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var snapshot models.ConsentSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.Equal(t, "tok", snapshot.Token)
		assert.True(t, snapshot.HasConsent)
		assert.Equal(t, models.PlatformIOS, snapshot.Platform)
		assert.Positive(t, snapshot.Timestamp)
	})

	t.Run("no token yet", func(t *testing.T) {
		env := newTestEnv(t, "android")
		env.native.EXPECT().GetToken(gomock.Any()).Return("", nil)

		rec := env.do(http.MethodGet, "/api/webview/snapshot", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var snapshot models.ConsentSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.False(t, snapshot.HasConsent)
	})

	t.Run("native unavailable", func(t *testing.T) {
		env := newTestEnv(t, "android")
		env.native.EXPECT().GetToken(gomock.Any()).Return("", adapter.ErrNativeUnavailable)

		rec := env.do(http.MethodGet, "/api/webview/snapshot", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestGetInjectionScript(t *testing.T) {
	env := newTestEnv(t, "ios")
	env.native.EXPECT().GetToken(gomock.Any()).Return("tok", nil)

	rec := env.do(http.MethodGet, "/api/webview/script", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "javascript")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Body.String(), "axeptioConsentSync")
}

func TestGetTokenizedURL(t *testing.T) {
	t.Run("appends token and platform", func(t *testing.T) {
		env := newTestEnv(t, "android")
		env.native.EXPECT().GetToken(gomock.Any()).Return("tok", nil)

		rec := env.do(http.MethodGet, "/api/webview/url?base="+url.QueryEscape("https://example.com/page?a=1"), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.URLResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		u, err := url.Parse(resp.URL)
		require.NoError(t, err)
		assert.Equal(t, "1", u.Query().Get("a"))
		assert.Equal(t, "tok", u.Query().Get(webview.QueryParamToken))
		assert.Equal(t, "android", u.Query().Get(webview.QueryParamPlatform))
	})

	t.Run("missing base", func(t *testing.T) {
		env := newTestEnv(t, "android")

		rec := env.do(http.MethodGet, "/api/webview/url", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("relative base", func(t *testing.T) {
		env := newTestEnv(t, "android")
		env.native.EXPECT().GetToken(gomock.Any()).Return("tok", nil)

		rec := env.do(http.MethodGet, "/api/webview/url?base=relative/path", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetEmbedConfigAndProps(t *testing.T) {
	t.Run("ios carries ios-only props", func(t *testing.T) {
		env := newTestEnv(t, "ios")

		rec := env.do(http.MethodGet, "/api/webview/props", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var props models.WebViewProps
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &props))
		assert.Contains(t, props, "bounces")
	})

	t.Run("android omits ios-only config", func(t *testing.T) {
		env := newTestEnv(t, "android")

		rec := env.do(http.MethodGet, "/api/webview/config", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "bounces")
	})

	t.Run("ios recommendation points at a served route", func(t *testing.T) {
		env := newTestEnv(t, "ios")

		i := strings.Index(diagnostics.RecommendIOSConfig, "/api/")
		require.GreaterOrEqual(t, i, 0)
		path := strings.Fields(diagnostics.RecommendIOSConfig[i:])[0]

		rec := env.do(http.MethodGet, path, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "bounces")
	})
}

func TestGetInjectionSettings(t *testing.T) {
	t.Run("ios overrides user agent", func(t *testing.T) {
		env := newTestEnv(t, "ios")

		rec := env.do(http.MethodGet, "/api/webview/injection", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.InjectionSettingsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "onLoadStart", resp.InjectionTime)
		assert.NotEmpty(t, resp.UserAgent)
	})

	t.Run("android keeps default user agent", func(t *testing.T) {
		env := newTestEnv(t, "android")

		rec := env.do(http.MethodGet, "/api/webview/injection", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "userAgent")
	})
}

func TestPostWebViewMessage(t *testing.T) {
	t.Run("sync result stored", func(t *testing.T) {
		env := newTestEnv(t, "ios")
		env.repo.EXPECT().
			SaveSyncResult(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, result models.StoredSyncResult) error {
				assert.True(t, result.Success)
				assert.NotEmpty(t, result.ID)
				return nil
			})

		rec := env.do(http.MethodPost, "/api/webview/messages", `{"axeptioSyncSuccess":true,"token":"tok","timestamp":1700000000000}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var stored models.StoredMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
		assert.Equal(t, models.WebViewMessageSync, stored.Message.Kind)
		assert.NotEmpty(t, stored.ID)
	})

	t.Run("capability report stored", func(t *testing.T) {
		env := newTestEnv(t, "ios")
		env.repo.EXPECT().SaveCapabilityResult(gomock.Any(), gomock.Any()).Return(nil)

		body := `{"type":"axeptio_webview_capability_test","results":{"cookies":{"readable":true},"localStorage":{"available":true},"timestamp":1}}`
		rec := env.do(http.MethodPost, "/api/webview/messages", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), string(models.WebViewMessageCapability))
	})

	t.Run("stringified capability report stored as capability", func(t *testing.T) {
		env := newTestEnv(t, "ios")
		env.repo.EXPECT().SaveCapabilityResult(gomock.Any(), gomock.Any()).Return(nil)

		body := `"{\"type\":\"axeptio_webview_capability_test\",\"results\":{\"cookies\":{\"readable\":true},\"timestamp\":1}}"`
		rec := env.do(http.MethodPost, "/api/webview/messages", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		var stored models.StoredMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
		assert.Equal(t, models.WebViewMessageCapability, stored.Message.Kind)
	})

	t.Run("capability report without results", func(t *testing.T) {
		env := newTestEnv(t, "ios")

		rec := env.do(http.MethodPost, "/api/webview/messages", `{"type":"axeptio_webview_capability_test"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized body", func(t *testing.T) {
		env := newTestEnv(t, "ios")

		rec := env.do(http.MethodPost, "/api/webview/messages", strings.Repeat("a", maxMessageBodySize+1))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
