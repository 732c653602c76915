package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Content types written by the bridge's HTTP layer.
const (
	ContentTypeJSON       = "application/json"
	ContentTypeText       = "text/plain; charset=utf-8"
	ContentTypeJavaScript = "text/javascript; charset=utf-8"
)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteBody writes body verbatim with the given content type and status code.
// It is used for generated scripts and plain-text support reports.
func WriteBody(w http.ResponseWriter, contentType, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write([]byte(body))
}
