// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/service"
)

// humanizeError turns transport failures into something a support operator
// can act on.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Bridge rejected the support token (check TOKEN_SIGN_KEY and TOKEN_ISSUER)"
	case errors.Is(err, adapter.ErrNativeUnavailable):
		return "Bridge is up but the native SDK host is not reachable"
	case errors.Is(err, service.ErrSupportNotAuthorized):
		return "Support token was not issued"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Consent bridge is not reachable"
	}

	return err.Error()
}
