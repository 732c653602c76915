package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/consent-bridge/models"
)

// postEvent forwards a lifecycle event from the native host to the
// registered listeners. onGoogleConsentModeUpdate carries the consent mode
// state as its JSON body; other events have no body.
func (h *Handler) postEvent(w http.ResponseWriter, r *http.Request) {
	event := models.ConsentEvent{Name: models.EventName(chi.URLParam(r, "event"))}

	if event.Name == models.EventGoogleConsentModeUpdate {
		var consent models.GoogleConsentV2
		if !decodeJSONBody(w, r, "*Handler.postEvent", &consent) {
			return
		}
		event.GoogleConsent = &consent
	}

	if err := h.services.ConsentClient.Dispatch(r.Context(), event); err != nil {
		writeError(w, r, "*Handler.postEvent", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
