// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredReport is a persisted [DiagnosticReport].
type StoredReport struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Report    DiagnosticReport `json:"report"`
}

// StoredSyncResult is a persisted [SyncValidationResult]. The token itself is
// never stored, only its fingerprint.
type StoredSyncResult struct {
	ID               string    `json:"id"`
	ReceivedAt       time.Time `json:"receivedAt"`
	Success          bool      `json:"success"`
	TokenFingerprint string    `json:"tokenFingerprint,omitempty"`
	Error            string    `json:"error,omitempty"`
	Timestamp        int64     `json:"timestamp"`
}

// StoredCapabilityResult is a persisted capability probe report.
type StoredCapabilityResult struct {
	ID         string                `json:"id"`
	ReceivedAt time.Time             `json:"receivedAt"`
	Results    CapabilityTestResults `json:"results"`
}

// StoredMessage is what [WebViewMessage] intake returns to the caller: the
// classified message plus the identifier of the persisted record.
type StoredMessage struct {
	ID      string         `json:"id"`
	Message WebViewMessage `json:"message"`
}
