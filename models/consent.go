// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConsentSnapshot is a timestamped, platform-tagged view of the consent token
// at the moment a synchronization was requested.
//
// A snapshot is created fresh for every sync request and is never mutated.
// The JSON form is what injected scripts expose as window.axeptioConsentSync.
type ConsentSnapshot struct {
	// Token is the opaque consent token issued by the native SDK.
	Token string `json:"token"`

	// Timestamp is the sampling time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`

	// Platform is the platform the snapshot was produced on.
	Platform Platform `json:"platform"`

	// HasConsent is true iff Token is non-empty.
	HasConsent bool `json:"hasConsent"`
}

// TargetService selects which consent product the native SDK is initialized for.
type TargetService string

const (
	TargetServiceBrands        TargetService = "brands"
	TargetServiceTCFPublishers TargetService = "publisher"
)

// InitializeRequest carries the arguments of the native SDK initialization.
type InitializeRequest struct {
	Service        TargetService `json:"targetService"`
	ClientID       string        `json:"clientId"`
	CookiesVersion string        `json:"cookiesVersion"`
	// Token is optional; an empty value lets the SDK start without one.
	Token string `json:"token,omitempty"`
}

// GoogleConsentV2 is the Google Consent Mode v2 state forwarded by the
// native SDK whenever the user's choices change.
type GoogleConsentV2 struct {
	AdPersonalization bool `json:"adPersonalization"`
	AdStorage         bool `json:"adStorage"`
	AdUserData        bool `json:"adUserData"`
	AnalyticsStorage  bool `json:"analyticsStorage"`
}

// EventName is the name of a lifecycle event forwarded by the native SDK.
type EventName string

const (
	EventPopupClosed             EventName = "onPopupClosedEvent"
	EventConsentCleared          EventName = "onConsentCleared"
	EventGoogleConsentModeUpdate EventName = "onGoogleConsentModeUpdate"
)

// KnownEvent reports whether name is one of the events the native SDK emits.
func KnownEvent(name EventName) bool {
	switch name {
	case EventPopupClosed, EventConsentCleared, EventGoogleConsentModeUpdate:
		return true
	}
	return false
}

// ConsentEvent is a single lifecycle event. GoogleConsent is set only for
// [EventGoogleConsentModeUpdate].
type ConsentEvent struct {
	Name          EventName        `json:"name"`
	GoogleConsent *GoogleConsentV2 `json:"googleConsent,omitempty"`
}
