// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, HTTP response writing,
// HTTP client initialization, support-token generation and validation,
// identifier generation and the process-wide millisecond clock.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey is the key under which the authenticated support operator
// (the support token subject) is stored in the request context.
var OperatorCtxKey = contextKey("operator")

// GetOperatorFromContext retrieves the support operator name from ctx.
// ok is false when the value is missing, empty or of an unexpected type.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}
