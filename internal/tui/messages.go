package tui

import (
	"github.com/MKhiriev/consent-bridge/internal/service"
	"github.com/MKhiriev/consent-bridge/models"
)

type overviewLoadedMsg struct {
	overview service.SupportOverview
	err      error
}

type probeDoneMsg struct {
	result models.CapabilityProbeResult
	err    error
}

type historyLoadedMsg struct {
	reports      []models.StoredReport
	capabilities []models.StoredCapabilityResult
	err          error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
