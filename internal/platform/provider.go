// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"github.com/MKhiriev/consent-bridge/models"
)

// DefaultIsolationMajorVersion is the first iOS major version whose web
// engine isolates the embedded view's cookie jar from the native app.
const DefaultIsolationMajorVersion = 14

const (
	injectionTime = "onLoadStart"
	iosUserAgent  = "Mozilla/5.0 (iPhone; CPU iPhone OS like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1 AxeptioRNSDK/2.0"
)

// Embed prop keys, shared by [Provider.EmbedProps] and the JSON form of
// [models.WebViewEmbedConfig].
const (
	PropIncognito                           = "incognito"
	PropCacheEnabled                        = "cacheEnabled"
	PropSharedCookiesEnabled                = "sharedCookiesEnabled"
	PropAllowsBackForwardNavigationGestures = "allowsBackForwardNavigationGestures"
	PropBounces                             = "bounces"
	PropScrollEnabled                       = "scrollEnabled"
)

// Provider implements the platform configuration lookups.
type Provider struct {
	isolationMajor int
}

// NewProvider returns a Provider that treats iOS versions whose major
// component is >= isolationMajor as problematic. A non-positive value selects
// [DefaultIsolationMajorVersion].
func NewProvider(isolationMajor int) *Provider {
	if isolationMajor <= 0 {
		isolationMajor = DefaultIsolationMajorVersion
	}
	return &Provider{isolationMajor: isolationMajor}
}

// IsolationMajorVersion reports the configured threshold.
func (p *Provider) IsolationMajorVersion() int {
	return p.isolationMajor
}

// EmbedConfig returns the web view configuration for platform. The iOS-only
// fields are left nil for every other platform.
func (p *Provider) EmbedConfig(platform models.Platform) models.WebViewEmbedConfig {
	if !platform.IsIOS() {
		return models.WebViewEmbedConfig{
			Incognito:            false,
			CacheEnabled:         true,
			SharedCookiesEnabled: true,
		}
	}

	return models.WebViewEmbedConfig{
		Incognito:                           false,
		CacheEnabled:                        false,
		SharedCookiesEnabled:                true,
		AllowsBackForwardNavigationGestures: boolPtr(false),
		Bounces:                             boolPtr(false),
		ScrollEnabled:                       boolPtr(true),
	}
}

// EmbedProps returns the flattened form of EmbedConfig, with the same
// conditional presence of the iOS-only keys.
func (p *Provider) EmbedProps(platform models.Platform) models.WebViewProps {
	cfg := p.EmbedConfig(platform)

	props := models.WebViewProps{
		PropIncognito:            cfg.Incognito,
		PropCacheEnabled:         cfg.CacheEnabled,
		PropSharedCookiesEnabled: cfg.SharedCookiesEnabled,
	}
	setIfPresent(props, PropAllowsBackForwardNavigationGestures, cfg.AllowsBackForwardNavigationGestures)
	setIfPresent(props, PropBounces, cfg.Bounces)
	setIfPresent(props, PropScrollEnabled, cfg.ScrollEnabled)

	return props
}

// IsProblematicVersion reports whether an iOS version is known to isolate
// web view storage. It is always false for other platforms and for versions
// whose major component cannot be read.
func (p *Provider) IsProblematicVersion(platform models.Platform, version string) bool {
	if !platform.IsIOS() {
		return false
	}

	major, ok := MajorVersion(version)
	if !ok {
		return false
	}
	return major >= p.isolationMajor
}

// UserAgent returns the custom user agent the embedded view should present.
// Only iOS overrides it.
func (p *Provider) UserAgent(platform models.Platform) (string, bool) {
	if !platform.IsIOS() {
		return "", false
	}
	return iosUserAgent, true
}

// InjectionTime is the web view lifecycle hook at which the sync script must
// run.
func (p *Provider) InjectionTime() string {
	return injectionTime
}

func setIfPresent(props models.WebViewProps, key string, v *bool) {
	if v != nil {
		props[key] = *v
	}
}

func boolPtr(b bool) *bool {
	return &b
}
