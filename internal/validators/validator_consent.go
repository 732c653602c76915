package validators

import (
	"context"

	"github.com/MKhiriev/consent-bridge/models"
)

const (
	FieldClientID       = "client_id"
	FieldCookiesVersion = "cookies_version"
	FieldTargetService  = "target_service"
	FieldURL            = "url"
	FieldEventName      = "event_name"
	FieldGoogleConsent  = "google_consent"
)

var allowedTargetServices = []models.TargetService{
	models.TargetServiceBrands,
	models.TargetServiceTCFPublishers,
}

// ConsentValidator validates requests forwarded to the native consent SDK.
type ConsentValidator struct {
}

func NewConsentValidator() Validator {
	return &ConsentValidator{}
}

func (v *ConsentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InitializeRequest:
		return v.validateInitializeRequest(ctx, value, fields...)
	case *models.InitializeRequest:
		return v.validateInitializeRequest(ctx, *value, fields...)

	case models.AppendTokenURLRequest:
		return v.validateAppendTokenURLRequest(ctx, value, fields...)
	case *models.AppendTokenURLRequest:
		return v.validateAppendTokenURLRequest(ctx, *value, fields...)

	case models.ConsentEvent:
		return v.validateConsentEvent(ctx, value, fields...)
	case *models.ConsentEvent:
		return v.validateConsentEvent(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidTargetService(s models.TargetService) bool {
	for _, t := range allowedTargetServices {
		if s == t {
			return true
		}
	}
	return false
}

func (v *ConsentValidator) validateInitializeRequest(_ context.Context, req models.InitializeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTargetService, FieldClientID, FieldCookiesVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldTargetService:
			if !isValidTargetService(req.Service) {
				return ErrUnknownTargetService
			}
		case FieldClientID:
			if req.ClientID == "" {
				return ErrEmptyClientID
			}
		case FieldCookiesVersion:
			if req.CookiesVersion == "" {
				return ErrEmptyCookiesVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ConsentValidator) validateAppendTokenURLRequest(_ context.Context, req models.AppendTokenURLRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if req.URL == "" {
				return ErrEmptyURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// the google consent payload belongs to onGoogleConsentModeUpdate only
func (v *ConsentValidator) validateConsentEvent(_ context.Context, event models.ConsentEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventName, FieldGoogleConsent}
	}

	for _, f := range fields {
		switch f {
		case FieldEventName:
			if !models.KnownEvent(event.Name) {
				return ErrUnknownEvent
			}
		case FieldGoogleConsent:
			isUpdate := event.Name == models.EventGoogleConsentModeUpdate
			if isUpdate && event.GoogleConsent == nil {
				return ErrMissingGoogleConsent
			}
			if !isUpdate && event.GoogleConsent != nil {
				return ErrUnexpectedPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
