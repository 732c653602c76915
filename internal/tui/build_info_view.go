// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/consent-bridge/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, bridge models.VersionInfo) string {
	var b strings.Builder

	b.WriteString("Support CLI\n")
	b.WriteString("  Version: " + valueOrNA(info.BuildVersion()) + "\n")
	b.WriteString("  Date:    " + valueOrNA(info.BuildDate()) + "\n")
	b.WriteString("  Commit:  " + valueOrNA(info.BuildCommit()) + "\n")
	b.WriteString("\nConsent bridge\n")
	b.WriteString("  Version: " + valueOrNA(bridge.Version) + "\n")
	b.WriteString("  Date:    " + valueOrNA(bridge.BuildDate) + "\n")
	b.WriteString("  Commit:  " + valueOrNA(bridge.Commit) + "\n")
	b.WriteString("  SDK:     " + valueOrNA(bridge.SDKVersion))

	return renderPage("BUILD INFO", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
