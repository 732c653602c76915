// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.ConsentClient.GetConsentDataForWebView(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getSnapshot", err)
		return
	}

	_, _ = utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) getInjectionScript(w http.ResponseWriter, r *http.Request) {
	script, err := h.services.ConsentClient.GetWebViewInjectionScript(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getInjectionScript", err)
		return
	}

	_, _ = utils.WriteBody(w, utils.ContentTypeJavaScript, script, http.StatusOK)
}

func (h *Handler) getTokenizedURL(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	if base == "" {
		writeError(w, r, "*Handler.getTokenizedURL", ErrMissingBaseURL)
		return
	}

	tokenized, err := h.services.ConsentClient.SyncConsentWithWebView(r.Context(), base)
	if err != nil {
		writeError(w, r, "*Handler.getTokenizedURL", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.URLResponse{URL: tokenized}, http.StatusOK)
}

func (h *Handler) getEmbedConfig(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.ConsentClient.GetEmbedConfig(), http.StatusOK)
}

func (h *Handler) getEmbedProps(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.ConsentClient.GetEmbedProps(), http.StatusOK)
}

func (h *Handler) getInjectionSettings(w http.ResponseWriter, r *http.Request) {
	client := h.services.ConsentClient

	resp := models.InjectionSettingsResponse{InjectionTime: client.InjectionTime()}
	if ua, ok := client.UserAgent(); ok {
		resp.UserAgent = ua
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

// postWebViewMessage accepts whatever the embedded view posted, either a JSON
// object or a JSON string holding one, and records it for support.
func (h *Handler) postWebViewMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMessageBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Err(err).Str("func", "*Handler.postWebViewMessage").Msg("message too large")
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "message too large"}, http.StatusRequestEntityTooLarge)
			return
		}
		writeError(w, r, "*Handler.postWebViewMessage", err)
		return
	}

	stored, err := h.services.SupportService.RecordWebViewMessage(r.Context(), body)
	if err != nil {
		writeError(w, r, "*Handler.postWebViewMessage", err)
		return
	}

	_, _ = utils.WriteJSON(w, stored, http.StatusCreated)
}

