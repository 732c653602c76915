// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webview

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/consent-bridge/models"
)

// ParseMessage classifies a message received from the embedded view.
//
// Messages tagged with type "axeptio_webview_capability_test" are decoded as
// capability probe reports; anything else is treated as a sync result and run
// through [ValidateSyncResult]. The only error is
// [ErrInvalidCapabilityMessage], for a tagged message whose results do not
// decode.
func ParseMessage(message any) (models.WebViewMessage, error) {
	data, err := decodeObject(message)
	if err != nil {
		result := ValidateSyncResult(message)
		return models.WebViewMessage{Kind: models.WebViewMessageSync, SyncResult: &result}, nil
	}

	if tag, _ := data["type"].(string); tag == models.CapabilityTestType {
		capability, err := decodeCapability(data)
		if err != nil {
			return models.WebViewMessage{}, err
		}
		return models.WebViewMessage{Kind: models.WebViewMessageCapability, Capability: &capability}, nil
	}

	result := syncResultFromObject(data)
	return models.WebViewMessage{Kind: models.WebViewMessageSync, SyncResult: &result}, nil
}

func decodeCapability(data map[string]any) (models.CapabilityTestMessage, error) {
	if _, ok := data["results"].(map[string]any); !ok {
		return models.CapabilityTestMessage{}, fmt.Errorf("%w: missing results object", ErrInvalidCapabilityMessage)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return models.CapabilityTestMessage{}, fmt.Errorf("%w: %w", ErrInvalidCapabilityMessage, err)
	}

	var msg models.CapabilityTestMessage
	if err = json.Unmarshal(raw, &msg); err != nil {
		return models.CapabilityTestMessage{}, fmt.Errorf("%w: %w", ErrInvalidCapabilityMessage, err)
	}

	return msg, nil
}
