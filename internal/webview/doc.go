// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package webview keeps a consent token synchronized between the native
// consent SDK and an embedded web content view whose cookie jar and storage
// are isolated from the native process (iOS WKWebView, iOS 14+).
//
// Two propagation paths are offered:
//   - script injection: [GenerateInjectionScript] compiles a [models.ConsentSnapshot]
//     into a self-invoking script that publishes window.axeptioConsentSync,
//     writes localStorage keys, dispatches the axeptioTokenSync event and sets
//     a best-effort cookie;
//   - navigation: [TokenizeURL] adds the token, platform and sync timestamp as
//     query parameters.
//
// Messages posted back by the view are parsed by [ValidateSyncResult] and
// [ParseMessage]. Every function in this package is pure apart from sampling
// the clock; none of them log or perform I/O.
package webview

// Names shared with in-page code. Changing any of them breaks deployed pages.
const (
	GlobalSyncProperty  = "axeptioConsentSync"
	StorageTokenKey     = "axeptio_token"
	StorageTimestampKey = "axeptio_sync_timestamp"
	SyncEventName       = "axeptioTokenSync"
	TokenCookieName     = "axeptio_token"

	QueryParamToken    = "axeptio_token"
	QueryParamPlatform = "axeptio_platform"
	QueryParamSync     = "axeptio_sync"

	SyncSuccessFlag = "axeptioSyncSuccess"
)
