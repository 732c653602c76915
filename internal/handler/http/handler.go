package http

import (
	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/service"
)

// maxMessageBodySize bounds request bodies posted by the host application.
const maxMessageBodySize = 1 << 20

type Handler struct {
	services *service.Services

	// support token verification
	signKey string
	issuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		logger:   logger,
	}
}
