// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webview

import "errors"

var (
	// ErrInvalidURL is returned by [TokenizeURL] when the base URL cannot be
	// parsed as an absolute URL. It is a caller error and is never retried.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidCapabilityMessage is returned by [ParseMessage] when a message
	// carries the capability-test type tag but its results cannot be decoded.
	ErrInvalidCapabilityMessage = errors.New("invalid capability test message")
)
