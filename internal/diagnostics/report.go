package diagnostics

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/consent-bridge/models"
)

const reportTitle = "=== Axeptio SDK Diagnostic Report ==="

const (
	noteIOS = "Note: iOS WebView cookie synchronization has known limitations.\n" +
		"Recommend using token-based sync for reliable consent state management."
	noteDefault = "Platform should support normal WebView cookie synchronization."
)

// FormatReport renders report as a fixed-layout text block for support
// tickets.
func FormatReport(report models.DiagnosticReport) string {
	var b strings.Builder

	b.WriteString(reportTitle)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Platform: %s %s\n", report.Platform, report.PlatformVersion)
	fmt.Fprintf(&b, "SDK Version: %s\n", report.SDKVersion)
	fmt.Fprintf(&b, "Token Available: %s\n", yesNo(report.HasToken, "Yes", "No"))
	fmt.Fprintf(&b, "WebView Cookie Sync: %s\n", yesNo(report.WebViewSupport.CookieSyncCapable, "Supported", "Limited"))
	fmt.Fprintf(&b, "Storage Isolation: %s\n", yesNo(report.WebViewSupport.IsolatedStorage, "Yes (iOS WKWebView)", "No"))
	b.WriteByte('\n')

	if report.Platform.IsIOS() {
		b.WriteString(noteIOS)
	} else {
		b.WriteString(noteDefault)
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len(reportTitle)))

	return b.String()
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}
