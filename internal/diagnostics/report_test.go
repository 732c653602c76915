package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/consent-bridge/models"
)

func TestFormatReport_IOS(t *testing.T) {
	report := models.DiagnosticReport{
		Platform:        models.PlatformIOS,
		PlatformVersion: "17.0",
		SDKVersion:      SDKVersion,
		HasToken:        true,
		WebViewSupport:  models.WebViewSupport{CookieSyncCapable: false, IsolatedStorage: true},
	}

	want := strings.Join([]string{
		"=== Axeptio SDK Diagnostic Report ===",
		"Platform: ios 17.0",
		"SDK Version: 2.0.11",
		"Token Available: Yes",
		"WebView Cookie Sync: Limited",
		"Storage Isolation: Yes (iOS WKWebView)",
		"",
		"Note: iOS WebView cookie synchronization has known limitations.",
		"Recommend using token-based sync for reliable consent state management.",
		"=====================================",
	}, "\n")

	assert.Equal(t, want, FormatReport(report))
}

func TestFormatReport_Android(t *testing.T) {
	report := models.DiagnosticReport{
		Platform:        models.PlatformAndroid,
		PlatformVersion: UnknownPlatformVersion,
		SDKVersion:      SDKVersion,
		HasToken:        false,
		WebViewSupport:  models.WebViewSupport{CookieSyncCapable: true, IsolatedStorage: false},
	}

	got := FormatReport(report)
	lines := strings.Split(got, "\n")

	assert.Equal(t, "Platform: android unknown", lines[1])
	assert.Equal(t, "Token Available: No", lines[3])
	assert.Equal(t, "WebView Cookie Sync: Supported", lines[4])
	assert.Equal(t, "Storage Isolation: No", lines[5])
	assert.Equal(t, "", lines[6])
	assert.Equal(t, "Platform should support normal WebView cookie synchronization.", lines[7])
	assert.Equal(t, strings.Repeat("=", len(lines[0])), lines[len(lines)-1])
	assert.False(t, strings.HasSuffix(got, "\n"))
}
