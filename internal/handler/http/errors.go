// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. They are mapped to statuses by
// statusFromError.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidLimit is returned for a limit query parameter that is not a
	// positive integer.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrMissingBaseURL is returned by /api/webview/url without ?base=.
	ErrMissingBaseURL = errors.New("missing base url")
)
