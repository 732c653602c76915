package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/consent-bridge/internal/store"
	"github.com/MKhiriev/consent-bridge/internal/utils"
)

// maxListLimit caps ?limit= on support listings.
const maxListLimit = 500

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, "*Handler.listReports", err)
		return
	}

	reports, err := h.services.SupportService.ListReports(r.Context(), limit)
	if err != nil {
		writeError(w, r, "*Handler.listReports", err)
		return
	}

	_, _ = utils.WriteJSON(w, reports, http.StatusOK)
}

func (h *Handler) listSyncResults(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, "*Handler.listSyncResults", err)
		return
	}

	results, err := h.services.SupportService.ListSyncResults(r.Context(), limit)
	if err != nil {
		writeError(w, r, "*Handler.listSyncResults", err)
		return
	}

	_, _ = utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) listCapabilityResults(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, "*Handler.listCapabilityResults", err)
		return
	}

	results, err := h.services.SupportService.ListCapabilityResults(r.Context(), limit)
	if err != nil {
		writeError(w, r, "*Handler.listCapabilityResults", err)
		return
	}

	_, _ = utils.WriteJSON(w, results, http.StatusOK)
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return store.DefaultListLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, ErrInvalidLimit
	}

	return min(limit, maxListLimit), nil
}
