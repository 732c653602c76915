package service

import (
	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/logger"
)

type ClientServices struct {
	SupportService ClientSupportService
}

func NewClientServices(bridge adapter.BridgeAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SupportService: NewClientSupportService(bridge, cfg.App, logger),
	}
}
