// Package crypto derives non-reversible fingerprints of consent tokens so
// that raw tokens never reach logs or persistent storage.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/fingerprinter_mock.go -package=mock

// TokenFingerprinter maps a consent token to a short, stable identifier.
type TokenFingerprinter interface {
	// Fingerprint returns the first 16 hex characters of the keyed BLAKE2b-256
	// digest of token, or "" for an empty token.
	Fingerprint(token string) string
}
