package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/consent-bridge/internal/logger"
)

func executeWithTraceID(t *testing.T, incoming string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, buf.String()
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	rec, logged := executeWithTraceID(t, "my-trace")

	assert.Equal(t, "my-trace", rec.Header().Get(traceIDHeader))
	assert.Contains(t, logged, `"`+logger.FieldTraceID+`":"my-trace"`)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	rec, logged := executeWithTraceID(t, "")

	traceID := rec.Header().Get(traceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Contains(t, logged, traceID)
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	first, _ := executeWithTraceID(t, "")
	second, _ := executeWithTraceID(t, "")

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}
