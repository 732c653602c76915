// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DiagnosticReport aggregates token availability, platform version and the
// static web view heuristics for support tooling.
type DiagnosticReport struct {
	Platform        Platform       `json:"platform"`
	PlatformVersion string         `json:"platformVersion"`
	SDKVersion      string         `json:"sdkVersion"`
	HasToken        bool           `json:"hasToken"`
	WebViewSupport  WebViewSupport `json:"webViewSupport"`
}

// WebViewSupport is a platform-derived heuristic, not a measurement. The
// capability probe script ([CapabilityTestMessage]) is the measured
// counterpart.
type WebViewSupport struct {
	CookieSyncCapable bool `json:"cookieSyncCapable"`
	IsolatedStorage   bool `json:"isolatedStorage"`
}

// CapabilityProbeResult is the outcome of the host-side capability probe.
// Order of Details and Recommendations is significant.
type CapabilityProbeResult struct {
	Passed          bool     `json:"passed"`
	Details         []string `json:"details"`
	Recommendations []string `json:"recommendations"`
}
