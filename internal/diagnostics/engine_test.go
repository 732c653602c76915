// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diagnostics

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/platform"
	"github.com/MKhiriev/consent-bridge/models"
)

var errNative = errors.New("native bridge unavailable")

func newEngine(p models.Platform, version string) *Engine {
	return NewEngine(
		models.PlatformInfo{Platform: p, Version: version},
		platform.NewProvider(platform.DefaultIsolationMajorVersion),
		logger.Nop(),
	)
}

func tokenOK(token string) TokenFunc {
	return func(context.Context) (string, error) { return token, nil }
}

func tokenErr(err error) TokenFunc {
	return func(context.Context) (string, error) { return "", err }
}

func versionOK(v string) VersionFunc {
	return func(context.Context) (string, error) { return v, nil }
}

func versionErr(err error) VersionFunc {
	return func(context.Context) (string, error) { return "", err }
}

func TestCollect_TokenFailureOnAndroid(t *testing.T) {
	e := newEngine(models.PlatformAndroid, "9.0")

	got := e.Collect(context.Background(), tokenErr(errNative), versionOK("9.0"))

	assert.Equal(t, models.DiagnosticReport{
		Platform:        models.PlatformAndroid,
		PlatformVersion: "9.0",
		SDKVersion:      SDKVersion,
		HasToken:        false,
		WebViewSupport: models.WebViewSupport{
			CookieSyncCapable: true,
			IsolatedStorage:   false,
		},
	}, got)
}

func TestCollect_VersionFailure(t *testing.T) {
	e := newEngine(models.PlatformIOS, "17.0")

	got := e.Collect(context.Background(), tokenOK("abc"), versionErr(errNative))

	assert.Equal(t, UnknownPlatformVersion, got.PlatformVersion)
	assert.True(t, got.HasToken)
	assert.Equal(t, models.PlatformIOS, got.Platform)
	assert.False(t, got.WebViewSupport.CookieSyncCapable)
	assert.True(t, got.WebViewSupport.IsolatedStorage)
}

func TestCollect_BothFail(t *testing.T) {
	e := newEngine(models.PlatformIOS, "")

	got := e.Collect(context.Background(), tokenErr(errNative), versionErr(errNative))

	assert.False(t, got.HasToken)
	assert.Equal(t, UnknownPlatformVersion, got.PlatformVersion)
	assert.Equal(t, "2.0.11", got.SDKVersion)
}

func TestCollect_EmptyTokenHasNoToken(t *testing.T) {
	e := newEngine(models.PlatformAndroid, "13")

	got := e.Collect(context.Background(), tokenOK(""), versionOK("13"))

	assert.False(t, got.HasToken)
	assert.Equal(t, "13", got.PlatformVersion)
}

func TestCollect_CallsRunConcurrently(t *testing.T) {
	e := newEngine(models.PlatformAndroid, "14")

	var (
		tokenStarted   = make(chan struct{})
		versionStarted = make(chan struct{})
	)

	getToken := func(ctx context.Context) (string, error) {
		close(tokenStarted)
		select {
		case <-versionStarted:
			return "abc", nil
		case <-time.After(2 * time.Second):
			return "", errors.New("version call never started")
		}
	}
	getVersion := func(ctx context.Context) (string, error) {
		close(versionStarted)
		select {
		case <-tokenStarted:
			return "14", nil
		case <-time.After(2 * time.Second):
			return "", errors.New("token call never started")
		}
	}

	got := e.Collect(context.Background(), getToken, getVersion)

	assert.True(t, got.HasToken)
	assert.Equal(t, "14", got.PlatformVersion)
}

func TestCollect_PassesContext(t *testing.T) {
	e := newEngine(models.PlatformAndroid, "14")

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	var seen atomic.Int32
	getToken := func(ctx context.Context) (string, error) {
		if ctx.Value(key{}) == "marker" {
			seen.Add(1)
		}
		return "t", nil
	}
	getVersion := func(ctx context.Context) (string, error) {
		if ctx.Value(key{}) == "marker" {
			seen.Add(1)
		}
		return "14", nil
	}

	e.Collect(ctx, getToken, getVersion)

	assert.Equal(t, int32(2), seen.Load())
}

func TestRunCapabilityProbe_IOSProblematicWithToken(t *testing.T) {
	e := newEngine(models.PlatformIOS, "17.0")

	got := e.RunCapabilityProbe(context.Background(), tokenOK("abc"))

	assert.True(t, got.Passed)
	assert.Equal(t, []string{
		DetailTokenAvailable,
		DetailIOSLimitations,
		"⚠️  iOS 17 - WKWebView cookie isolation active",
		DetailIOSCookieJar,
		DetailWebViewUpToDate,
	}, got.Details)
	assert.Equal(t, []string{
		RecommendTokenSync,
		RecommendIOSConfig,
		RecommendNativePopupsIOS,
	}, got.Recommendations)
}

func TestRunCapabilityProbe_IOSOldVersion(t *testing.T) {
	e := newEngine(models.PlatformIOS, "13.7")

	got := e.RunCapabilityProbe(context.Background(), tokenOK("abc"))

	assert.True(t, got.Passed)
	assert.Equal(t, []string{DetailTokenAvailable, DetailIOSLimitations, DetailWebViewUpToDate}, got.Details)
	assert.Equal(t, []string{RecommendNativePopupsIOS}, got.Recommendations)
}

func TestRunCapabilityProbe_IOSUnparsableVersion(t *testing.T) {
	e := newEngine(models.PlatformIOS, "abc.def")

	got := e.RunCapabilityProbe(context.Background(), tokenOK("abc"))

	assert.NotContains(t, got.Recommendations, RecommendTokenSync)
	assert.Contains(t, got.Recommendations, RecommendNativePopupsIOS)
}

func TestRunCapabilityProbe_AndroidMissingToken(t *testing.T) {
	e := newEngine(models.PlatformAndroid, "14")

	got := e.RunCapabilityProbe(context.Background(), tokenOK(""))

	assert.False(t, got.Passed)
	assert.Equal(t, []string{DetailTokenMissing, DetailAndroidNormal, DetailWebViewUpToDate}, got.Details)
	assert.Equal(t, []string{RecommendInitialize}, got.Recommendations)
}

func TestRunCapabilityProbe_TokenError(t *testing.T) {
	e := newEngine(models.PlatformAndroid, "14")

	got := e.RunCapabilityProbe(context.Background(), tokenErr(errNative))

	assert.False(t, got.Passed)
	require.NotEmpty(t, got.Details)
	assert.Equal(t, "❌ Error getting token: native bridge unavailable", got.Details[0])
	assert.Equal(t, []string{RecommendCheckSDK}, got.Recommendations)
}

func TestRunCapabilityProbe_CustomThreshold(t *testing.T) {
	e := NewEngine(
		models.PlatformInfo{Platform: models.PlatformIOS, Version: "17.0"},
		platform.NewProvider(18),
		logger.Nop(),
	)

	got := e.RunCapabilityProbe(context.Background(), tokenOK("abc"))

	assert.NotContains(t, got.Recommendations, RecommendTokenSync)
}

func TestEngine_EndToEnd(t *testing.T) {
	e := newEngine(models.PlatformIOS, "17.0")
	ctx := context.Background()

	report := e.Collect(ctx, tokenOK("abc"), versionOK("17.0"))
	probe := e.RunCapabilityProbe(ctx, tokenOK("abc"))

	assert.True(t, report.HasToken)
	assert.True(t, probe.Passed)
	assert.Contains(t, probe.Details, DetailTokenAvailable)
	assert.Contains(t, probe.Details, DetailIOSIsolation(17))
	assert.Contains(t, probe.Details, DetailIOSCookieJar)
	assert.Subset(t, probe.Recommendations, []string{RecommendTokenSync, RecommendIOSConfig, RecommendNativePopupsIOS})

	text := FormatReport(report)
	assert.Contains(t, text, "Platform: ios 17.0")
	assert.Contains(t, text, "Token Available: Yes")
}
