// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WebViewEmbedConfig describes how the host should configure the embedded
// web content view.
//
// The iOS-only fields are pointers: they are nil (and omitted from JSON) on
// other platforms so that consumers can tell "not applicable" apart from an
// explicit false.
type WebViewEmbedConfig struct {
	Incognito            bool `json:"incognito"`
	CacheEnabled         bool `json:"cacheEnabled"`
	SharedCookiesEnabled bool `json:"sharedCookiesEnabled"`

	AllowsBackForwardNavigationGestures *bool `json:"allowsBackForwardNavigationGestures,omitempty"`
	Bounces                             *bool `json:"bounces,omitempty"`
	ScrollEnabled                       *bool `json:"scrollEnabled,omitempty"`
}

// WebViewProps is the flattened, spreadable form of [WebViewEmbedConfig].
// Keys that do not apply to the platform are absent.
type WebViewProps map[string]bool

// SyncValidationResult is the parsed form of a message posted back by the
// embedded view after it processed an injected consent snapshot.
type SyncValidationResult struct {
	Success   bool    `json:"success"`
	Token     *string `json:"token,omitempty"`
	Error     *string `json:"error,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// CapabilityTestType is the type tag carried by capability probe reports.
const CapabilityTestType = "axeptio_webview_capability_test"

// CapabilityTestMessage is the payload the capability probe script posts
// through the host message channel.
type CapabilityTestMessage struct {
	Type    string                `json:"type"`
	Results CapabilityTestResults `json:"results"`
}

// CapabilityTestResults holds the measured cookie and localStorage access from
// inside the embedded view.
type CapabilityTestResults struct {
	Cookies      CookieCapability  `json:"cookies"`
	LocalStorage StorageCapability `json:"localStorage"`
	Timestamp    int64             `json:"timestamp"`
	UserAgent    string            `json:"userAgent"`
}

type CookieCapability struct {
	Readable     bool   `json:"readable"`
	Writable     bool   `json:"writable"`
	AxeptioFound bool   `json:"axeptioFound"`
	Error        string `json:"error,omitempty"`
}

type StorageCapability struct {
	Available    bool   `json:"available"`
	Writable     bool   `json:"writable"`
	AxeptioFound bool   `json:"axeptioFound"`
	Error        string `json:"error,omitempty"`
}

// WebViewMessageKind classifies a message received from the embedded view.
type WebViewMessageKind string

const (
	WebViewMessageSync       WebViewMessageKind = "sync_result"
	WebViewMessageCapability WebViewMessageKind = "capability_test"
)

// WebViewMessage is a classified message from the embedded view. Exactly one
// of SyncResult and Capability is set, according to Kind.
type WebViewMessage struct {
	Kind       WebViewMessageKind     `json:"kind"`
	SyncResult *SyncValidationResult  `json:"syncResult,omitempty"`
	Capability *CapabilityTestMessage `json:"capability,omitempty"`
}
