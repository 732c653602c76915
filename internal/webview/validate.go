// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

var (
	errEmptyMessage = errors.New("empty message")
	errNotAnObject  = errors.New("message is not an object")
)

// ValidateSyncResult parses a message posted back by the embedded view.
//
// message may be a JSON string or []byte, a json.RawMessage, a decoded
// map[string]any, or any value that marshals to a JSON object. The function
// never fails: malformed input yields Success == false with an
// "Invalid sync message: ..." error.
//
// Success is true only when the axeptioSyncSuccess field is the JSON boolean
// true. Token and Error are copied through when they are strings. Timestamp
// falls back to the current time when absent, not positive, out of
// the int64 range or not numeric.
func ValidateSyncResult(message any) models.SyncValidationResult {
	data, err := decodeObject(message)
	if err != nil {
		errMsg := fmt.Sprintf("Invalid sync message: %v", err)
		return models.SyncValidationResult{
			Success:   false,
			Error:     &errMsg,
			Timestamp: utils.NowMillis(),
		}
	}

	return syncResultFromObject(data)
}

func syncResultFromObject(data map[string]any) models.SyncValidationResult {
	success, _ := data[SyncSuccessFlag].(bool)

	result := models.SyncValidationResult{
		Success:   success,
		Token:     optionalString(data["token"]),
		Error:     optionalString(data["error"]),
		Timestamp: timestampOrNow(data["timestamp"]),
	}

	return result
}

// decodeObject normalises the accepted message shapes into a JSON object.
func decodeObject(message any) (map[string]any, error) {
	var raw []byte

	switch m := message.(type) {
	case nil:
		return nil, errEmptyMessage
	case map[string]any:
		return m, nil
	case string:
		raw = []byte(m)
	case []byte:
		raw = m
	case json.RawMessage:
		raw = m
	default:
		encoded, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		raw = encoded
	}

	decoded, err := decodeValue(bytes.TrimSpace(raw))
	if err != nil {
		return nil, err
	}

	// Hosts that forward postMessage data through JSON.stringify send the
	// object encoded as a JSON string. Unwrap one level.
	if inner, ok := decoded.(string); ok {
		if decoded, err = decodeValue(bytes.TrimSpace([]byte(inner))); err != nil {
			return nil, err
		}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		if decoded == nil {
			return nil, errEmptyMessage
		}
		return nil, errNotAnObject
	}

	return obj, nil
}

func decodeValue(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, errEmptyMessage
	}

	var decoded any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&decoded); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, errors.New("unexpected data after JSON value")
	}

	return decoded, nil
}

func optionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func timestampOrNow(v any) int64 {
	var f float64

	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			if i <= 0 {
				return utils.NowMillis()
			}
			return i
		}
		parsed, err := t.Float64()
		if err != nil {
			return utils.NowMillis()
		}
		f = parsed
	case float64:
		f = t
	case int64:
		f = float64(t)
	case int:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return utils.NowMillis()
		}
		f = parsed
	default:
		return utils.NowMillis()
	}

	// float64(math.MaxInt64) rounds up to 2^63, so >= keeps the conversion in range.
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 {
		return utils.NowMillis()
	}

	return int64(f)
}
