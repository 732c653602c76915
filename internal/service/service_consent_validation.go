package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/consent-bridge/internal/validators"
	"github.com/MKhiriev/consent-bridge/models"
)

// ConsentValidationService validates requests before they reach the native
// SDK. Every other call goes straight to the wrapped client.
type ConsentValidationService struct {
	ConsentClient
	validator validators.Validator
}

func NewConsentValidationService() ConsentClientWrapper {
	return &ConsentValidationService{
		validator: validators.NewConsentValidator(),
	}
}

func (v *ConsentValidationService) Initialize(ctx context.Context, req models.InitializeRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.ConsentClient.Initialize(ctx, req)
}

func (v *ConsentValidationService) AppendTokenURL(ctx context.Context, rawURL, token string) (string, error) {
	if err := v.validator.Validate(ctx, models.AppendTokenURLRequest{URL: rawURL, Token: token}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.ConsentClient.AppendTokenURL(ctx, rawURL, token)
}

func (v *ConsentValidationService) Dispatch(ctx context.Context, event models.ConsentEvent) error {
	if err := v.validator.Validate(ctx, event); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.ConsentClient.Dispatch(ctx, event)
}

func (v *ConsentValidationService) Wrap(inner ConsentClient) ConsentClient {
	v.ConsentClient = inner
	return v
}
