package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenRetrieval wraps native token failures on paths that have no
	// default token.
	ErrTokenRetrieval = errors.New("failed to retrieve consent token")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrSupportNotAuthorized = errors.New("support token is not issued")
)
