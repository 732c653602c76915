// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webview

import (
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

// FormatSnapshot turns a raw consent token into a timestamped, platform-tagged
// [models.ConsentSnapshot]. It never fails; an empty token yields a snapshot
// with HasConsent == false.
func FormatSnapshot(token string, platform models.Platform) models.ConsentSnapshot {
	return models.ConsentSnapshot{
		Token:      token,
		Timestamp:  utils.NowMillis(),
		Platform:   platform,
		HasConsent: len(token) > 0,
	}
}
