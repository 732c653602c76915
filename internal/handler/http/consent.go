package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/consent-bridge/internal/service"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

func (h *Handler) initialize(w http.ResponseWriter, r *http.Request) {
	var req models.InitializeRequest
	if !decodeJSONBody(w, r, "*Handler.initialize", &req) {
		return
	}

	if err := h.services.ConsentClient.Initialize(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.initialize", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setupUI(w http.ResponseWriter, r *http.Request) {
	h.nativeCall(w, r, "*Handler.setupUI", h.services.ConsentClient.SetupUI)
}

func (h *Handler) denyTracking(w http.ResponseWriter, r *http.Request) {
	h.nativeCall(w, r, "*Handler.denyTracking", h.services.ConsentClient.SetUserDeniedTracking)
}

func (h *Handler) showConsentScreen(w http.ResponseWriter, r *http.Request) {
	h.nativeCall(w, r, "*Handler.showConsentScreen", h.services.ConsentClient.ShowConsentScreen)
}

func (h *Handler) clearConsent(w http.ResponseWriter, r *http.Request) {
	h.nativeCall(w, r, "*Handler.clearConsent", h.services.ConsentClient.ClearConsent)
}

func (h *Handler) nativeCall(w http.ResponseWriter, r *http.Request, fn string, call func(context.Context) error) {
	if err := call(r.Context()); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.services.ConsentClient.GetToken(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getToken", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handler) getPlatformVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.services.ConsentClient.GetPlatformVersion(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getPlatformVersion", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PlatformVersionResponse{Version: version}, http.StatusOK)
}

func (h *Handler) appendTokenURL(w http.ResponseWriter, r *http.Request) {
	var req models.AppendTokenURLRequest
	if !decodeJSONBody(w, r, "*Handler.appendTokenURL", &req) {
		return
	}

	tokenized, err := h.services.ConsentClient.AppendTokenURL(r.Context(), req.URL, req.Token)
	if err != nil {
		writeError(w, r, "*Handler.appendTokenURL", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.URLResponse{URL: tokenized}, http.StatusOK)
}

// decodeJSONBody decodes the request body into dst and answers 400 on
// failure. It reports whether the handler may continue.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, fn string, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBodySize))
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, fn, fmt.Errorf("%w: invalid JSON: %w", service.ErrInvalidDataProvided, err))
		return false
	}
	return true
}
