// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodTestRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Get("/plain", ok)
	router.Put("/plain", ok)
	router.Route("/nested", func(r chi.Router) {
		r.Post("/item", ok)
		r.Post("/{id}/events", ok)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{"registered method passes", http.MethodGet, "/plain", http.StatusOK, ""},
		{"top-level route lists methods", http.MethodDelete, "/plain", http.StatusMethodNotAllowed, "GET, PUT"},
		{"nested route", http.MethodGet, "/nested/item", http.StatusMethodNotAllowed, "POST"},
		{"parameterised route", http.MethodGet, "/nested/42/events", http.StatusMethodNotAllowed, "POST"},
		{"unknown path", http.MethodGet, "/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newMethodTestRouter().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}

func TestPatternMatches(t *testing.T) {
	assert.True(t, patternMatches("/api/events/{event}", "/api/events/onConsentCleared"))
	assert.True(t, patternMatches("/api/diagnostics/", "/api/diagnostics"))
	assert.False(t, patternMatches("/api/events/{event}", "/api/events"))
	assert.False(t, patternMatches("/api/a", "/api/b"))
}
