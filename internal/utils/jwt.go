package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams  = errors.New("invalid params for generating support token")
	ErrEmptyTokenSubject   = errors.New("empty subject in support token")
	ErrInvalidBearerHeader = errors.New("invalid authorization header")
)

// GenerateSupportToken creates an HMAC-SHA256 signed JWT that authorizes a
// support operator against the bridge's support routes.
//
// The token carries the issuer, the operator name as subject, and iat/exp
// claims. All parameters are required.
//
// Example usage:
//
//	signed, err := utils.GenerateSupportToken("consent-bridge", "alice", time.Hour, "secret")
func GenerateSupportToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return "", ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing support token: %w", err)
	}

	return signed, nil
}

// ValidateSupportToken verifies signature, issuer and expiry of tokenString
// and returns its subject (the operator name).
//
// Expired tokens yield an error wrapping [jwt.ErrTokenExpired].
func ValidateSupportToken(tokenString, signKey, issuer string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error occurred validating support token: %w", err)
	}

	if claims.Subject == "" {
		return "", ErrEmptyTokenSubject
	}

	return claims.Subject, nil
}

// ParseBearerToken extracts the token part of an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrInvalidBearerHeader
	}
	return parts[1], nil
}
