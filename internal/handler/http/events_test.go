package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/consent-bridge/models"
)

func TestPostEvent(t *testing.T) {
	tests := []struct {
		name       string
		event      string
		body       string
		wantStatus int
		wantEvent  *models.ConsentEvent
	}{
		{
			name:       "popup closed",
			event:      "onPopupClosedEvent",
			wantStatus: http.StatusAccepted,
			wantEvent:  &models.ConsentEvent{Name: models.EventPopupClosed},
		},
		{
			name:       "consent cleared",
			event:      "onConsentCleared",
			wantStatus: http.StatusAccepted,
			wantEvent:  &models.ConsentEvent{Name: models.EventConsentCleared},
		},
		{
			name:       "google consent mode update",
			event:      "onGoogleConsentModeUpdate",
			body:       `{"adPersonalization":true,"adStorage":false,"adUserData":true,"analyticsStorage":false}`,
			wantStatus: http.StatusAccepted,
			wantEvent: &models.ConsentEvent{
				Name: models.EventGoogleConsentModeUpdate,
				GoogleConsent: &models.GoogleConsentV2{
					AdPersonalization: true,
					AdUserData:        true,
				},
			},
		},
		{
			name:       "google consent mode update without body",
			event:      "onGoogleConsentModeUpdate",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown event",
			event:      "onSomethingElse",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "android")

			var received []models.ConsentEvent
			dispose := env.handler.services.ConsentClient.AddListener(func(_ context.Context, event models.ConsentEvent) {
				received = append(received, event)
			})
			defer dispose()

			rec := env.do(http.MethodPost, "/api/events/"+tt.event, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantEvent == nil {
				assert.Empty(t, received)
				return
			}
			require.Len(t, received, 1)
			assert.Equal(t, *tt.wantEvent, received[0])
		})
	}
}
