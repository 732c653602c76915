// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 16

// tokenFingerprinter is the private implementation of [TokenFingerprinter].
type tokenFingerprinter struct {
	key []byte
}

// NewTokenFingerprinter constructs a [TokenFingerprinter] keyed with secret.
// The secret is first reduced to a 32-byte BLAKE2b digest so that keys of any
// length are accepted; an empty secret produces unkeyed fingerprints.
func NewTokenFingerprinter(secret string) TokenFingerprinter {
	if secret == "" {
		return &tokenFingerprinter{}
	}
	key := blake2b.Sum256([]byte(secret))
	return &tokenFingerprinter{key: key[:]}
}

// Fingerprint implements [TokenFingerprinter].
func (f *tokenFingerprinter) Fingerprint(token string) string {
	if token == "" {
		return ""
	}

	h, err := blake2b.New256(f.key)
	if err != nil {
		// key is always 0 or 32 bytes long
		panic(err)
	}
	h.Write([]byte(token))

	return hex.EncodeToString(h.Sum(nil))[:fingerprintLen]
}
