package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/utils"
)

// auth is an HTTP middleware that enforces support-token authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// with [utils.ValidateSupportToken] against the configured signing key and
// issuer and stores the operator (the token subject) in the request context
// under [utils.OperatorCtxKey].
//
// Missing, malformed, expired or otherwise invalid tokens are rejected with
// 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		operator, err := utils.ValidateSupportToken(tokenString, h.signKey, h.issuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing support token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		log.Info().Str("operator", operator).Str("uri", r.RequestURI).Msg("support access")

		ctx := context.WithValue(r.Context(), utils.OperatorCtxKey, operator)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
