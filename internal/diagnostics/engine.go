// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diagnostics aggregates token availability, platform version and
// the web view heuristics into support reports, and produces the in-view
// capability probe script.
package diagnostics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/platform"
	"github.com/MKhiriev/consent-bridge/models"
)

// SDKVersion is the consent SDK version reported in diagnostics.
const SDKVersion = "2.0.11"

// UnknownPlatformVersion replaces a platform version that could not be
// retrieved.
const UnknownPlatformVersion = "unknown"

// TokenFunc retrieves the current consent token from the native SDK.
type TokenFunc func(ctx context.Context) (string, error)

// VersionFunc retrieves the platform OS version from the native SDK.
type VersionFunc func(ctx context.Context) (string, error)

// Engine runs diagnostics for one host platform.
type Engine struct {
	info     models.PlatformInfo
	provider *platform.Provider
	logger   *logger.Logger
}

// NewEngine returns an Engine for the host described by info. The version in
// info is the synchronous platform primitive used by RunCapabilityProbe.
func NewEngine(info models.PlatformInfo, provider *platform.Provider, log *logger.Logger) *Engine {
	return &Engine{
		info:     info,
		provider: provider,
		logger:   log,
	}
}

// Platform reports the host platform the engine was built for.
func (e *Engine) Platform() models.Platform {
	return e.info.Platform
}

// Collect queries getToken and getVersion concurrently and builds a
// DiagnosticReport. Collaborator failures never propagate: a failed token
// read counts as no token and a failed version read becomes
// [UnknownPlatformVersion].
func (e *Engine) Collect(ctx context.Context, getToken TokenFunc, getVersion VersionFunc) models.DiagnosticReport {
	var (
		token   string
		version string
		g       errgroup.Group
	)

	// Each read downgrades its own failure, so neither goroutine returns an
	// error and Wait only joins them.

	g.Go(func() error {
		t, err := getToken(ctx)
		if err != nil {
			e.logger.Warn().Err(err).Msg("token retrieval failed during diagnostics")
			t = ""
		}
		token = t
		return nil
	})
	g.Go(func() error {
		v, err := getVersion(ctx)
		if err != nil {
			e.logger.Warn().Err(err).Msg("platform version retrieval failed during diagnostics")
			v = UnknownPlatformVersion
		}
		version = v
		return nil
	})
	_ = g.Wait()

	isIOS := e.info.Platform.IsIOS()

	return models.DiagnosticReport{
		Platform:        e.info.Platform,
		PlatformVersion: version,
		SDKVersion:      SDKVersion,
		HasToken:        len(token) > 0,
		WebViewSupport: models.WebViewSupport{
			CookieSyncCapable: !isIOS,
			IsolatedStorage:   isIOS,
		},
	}
}

// Capability probe details and recommendations, in emission order.
const (
	DetailTokenAvailable     = "✅ Axeptio token is available"
	DetailTokenMissing       = "❌ No Axeptio token found"
	DetailIOSLimitations     = "⚠️  iOS platform detected - WebView cookie sync limitations expected"
	DetailIOSCookieJar       = "⚠️  Cookies written by the native app are not visible inside the WebView"
	DetailAndroidNormal      = "✅ Android platform - WebView cookie sync should work normally"
	DetailWebViewUpToDate    = "ℹ️  For complete testing, ensure react-native-webview is up to date"
	RecommendInitialize      = "Initialize SDK and ensure consent is granted before using WebView"
	RecommendCheckSDK        = "Check SDK initialization and network connectivity"
	RecommendTokenSync       = "Use token-based synchronization instead of relying on cookies"
	RecommendIOSConfig       = "Apply the iOS WebView configuration from /api/webview/config"
	RecommendNativePopupsIOS = "Consider using native-only popups on iOS for better reliability"
)

// DetailTokenError is the detail recorded when token retrieval fails.
func DetailTokenError(err error) string {
	return fmt.Sprintf("❌ Error getting token: %v", err)
}

// DetailIOSIsolation is the detail recorded for an iOS major version known to
// isolate WebView storage.
func DetailIOSIsolation(major int) string {
	return fmt.Sprintf("⚠️  iOS %d - WKWebView cookie isolation active", major)
}

// RunCapabilityProbe checks token availability and the platform heuristics
// and returns the ordered findings. It is host-side only; the measured
// counterpart runs inside the view, see [GenerateCapabilityProbeScript].
func (e *Engine) RunCapabilityProbe(ctx context.Context, getToken TokenFunc) models.CapabilityProbeResult {
	result := models.CapabilityProbeResult{
		Passed:          true,
		Details:         []string{},
		Recommendations: []string{},
	}

	token, err := getToken(ctx)
	switch {
	case err != nil:
		e.logger.Warn().Err(err).Msg("token retrieval failed during capability probe")
		result.Passed = false
		result.Details = append(result.Details, DetailTokenError(err))
		result.Recommendations = append(result.Recommendations, RecommendCheckSDK)
	case token == "":
		result.Passed = false
		result.Details = append(result.Details, DetailTokenMissing)
		result.Recommendations = append(result.Recommendations, RecommendInitialize)
	default:
		result.Details = append(result.Details, DetailTokenAvailable)
	}

	if e.info.Platform.IsIOS() {
		result.Details = append(result.Details, DetailIOSLimitations)

		if e.provider.IsProblematicVersion(e.info.Platform, e.info.Version) {
			major, _ := platform.MajorVersion(e.info.Version)
			result.Details = append(result.Details, DetailIOSIsolation(major), DetailIOSCookieJar)
			result.Recommendations = append(result.Recommendations, RecommendTokenSync, RecommendIOSConfig)
		}

		result.Recommendations = append(result.Recommendations, RecommendNativePopupsIOS)
	} else {
		result.Details = append(result.Details, DetailAndroidNormal)
	}

	result.Details = append(result.Details, DetailWebViewUpToDate)

	return result
}
