// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownPlatform is returned by [ParsePlatform] for identifiers other than
// "ios" and "android".
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform identifies the mobile operating system hosting the native SDK and
// the embedded web content view.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// IsIOS reports whether p is [PlatformIOS].
func (p Platform) IsIOS() bool {
	return p == PlatformIOS
}

func (p Platform) String() string {
	return string(p)
}

// ParsePlatform converts a case-insensitive identifier into a [Platform].
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformIOS:
		return PlatformIOS, nil
	case PlatformAndroid:
		return PlatformAndroid, nil
	default:
		return "", ErrUnknownPlatform
	}
}

// PlatformInfo is the synchronous platform detection primitive: the current
// platform and its raw OS version string as reported by the host.
type PlatformInfo struct {
	Platform Platform `json:"platform"`
	Version  string   `json:"version"`
}
