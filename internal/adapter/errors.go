package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNativeUnavailable is returned when the native SDK host cannot be
	// reached or reports 503.
	ErrNativeUnavailable = errors.New("native sdk unavailable")

	ErrInvalidAddress = errors.New("invalid address")
)
