package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyClientID        = errors.New("client id is required")
	ErrEmptyCookiesVersion  = errors.New("cookies version is required")
	ErrUnknownTargetService = errors.New("unknown target service")
	ErrEmptyURL             = errors.New("url is required")
	ErrUnknownEvent         = errors.New("unknown consent event")
	ErrMissingGoogleConsent = errors.New("google consent payload is required")
	ErrUnexpectedPayload    = errors.New("event does not carry a google consent payload")
)
