package http

import (
	"net/http"

	"github.com/MKhiriev/consent-bridge/internal/utils"
)

func (h *Handler) getDiagnostics(w http.ResponseWriter, r *http.Request) {
	report := h.services.ConsentClient.GetDiagnosticInfo(r.Context())

	_, _ = utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) getFormattedReport(w http.ResponseWriter, r *http.Request) {
	client := h.services.ConsentClient
	formatted := client.FormatDiagnosticReport(client.GetDiagnosticInfo(r.Context()))

	_, _ = utils.WriteBody(w, utils.ContentTypeText, formatted, http.StatusOK)
}

func (h *Handler) getCapabilityProbe(w http.ResponseWriter, r *http.Request) {
	result := h.services.ConsentClient.TestWebViewCookieSync(r.Context())

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getProbeScript(w http.ResponseWriter, r *http.Request) {
	script := h.services.ConsentClient.GetWebViewCapabilityTestScript()

	_, _ = utils.WriteBody(w, utils.ContentTypeJavaScript, script, http.StatusOK)
}
