package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/service"
	"github.com/MKhiriev/consent-bridge/internal/store"
	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/internal/webview"
	"github.com/MKhiriev/consent-bridge/models"
)

// errorStatusMap is ordered: an error wrapping several sentinels gets the
// status of the first match, so native availability wins over the token
// retrieval wrapper.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{webview.ErrInvalidURL, http.StatusBadRequest},
	{ErrInvalidLimit, http.StatusBadRequest},
	{ErrMissingBaseURL, http.StatusBadRequest},

	{adapter.ErrNativeUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrBadRequest, http.StatusBadRequest},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrNotFound, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{service.ErrTokenRetrieval, http.StatusBadGateway},

	{store.ErrReportAlreadyExists, http.StatusConflict},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with a JSON [models.ErrorResponse]. Server
// side failures are reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
