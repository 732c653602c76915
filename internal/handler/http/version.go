package http

import (
	"net/http"

	"github.com/MKhiriev/consent-bridge/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetVersionInfo(r.Context())

	_, _ = utils.WriteJSON(w, info, http.StatusOK)
}
