package diagnostics

import (
	"strings"

	"github.com/MKhiriev/consent-bridge/internal/webview"
	"github.com/MKhiriev/consent-bridge/models"
)

const probeTestKey = "axeptio_test"

// GenerateCapabilityProbeScript returns a self-invoking script that, run
// inside the embedded view, measures cookie and localStorage access and posts
// a [models.CapabilityTestMessage] through window.ReactNativeWebView when
// that channel exists. Each capability is probed in its own try block, so one
// failure never hides the others or the report.
func GenerateCapabilityProbeScript() string {
	var (
		testKey   = webview.QuoteJS(probeTestKey)
		tokenKey  = webview.QuoteJS(webview.StorageTokenKey)
		cookieTag = webview.QuoteJS(webview.TokenCookieName + "=")
		testTag   = webview.QuoteJS(probeTestKey + "=")
		msgType   = webview.QuoteJS(models.CapabilityTestType)
	)

	lines := []string{
		"(function() {",
		"  var results = {",
		"    cookies: { readable: false, writable: false, axeptioFound: false },",
		"    localStorage: { available: false, writable: false, axeptioFound: false },",
		"    timestamp: Date.now(),",
		"    userAgent: \"\"",
		"  };",
		"  try {",
		"    results.userAgent = String(navigator.userAgent);",
		"  } catch (e) {}",
		"  try {",
		"    var cookies = document.cookie;",
		"    results.cookies.readable = typeof cookies === \"string\";",
		"    document.cookie = " + testTag + " + Date.now() + \"; path=/\";",
		"    results.cookies.writable = document.cookie.indexOf(" + testTag + ") !== -1;",
		"    results.cookies.axeptioFound = document.cookie.indexOf(" + cookieTag + ") !== -1;",
		"  } catch (e) {",
		"    results.cookies.error = String(e && e.message ? e.message : e);",
		"  }",
		"  try {",
		"    var storage = window.localStorage;",
		"    results.localStorage.available = !!storage;",
		"    if (storage) {",
		"      storage.setItem(" + testKey + ", String(Date.now()));",
		"      results.localStorage.writable = !!storage.getItem(" + testKey + ");",
		"      results.localStorage.axeptioFound = !!storage.getItem(" + tokenKey + ");",
		"      storage.removeItem(" + testKey + ");",
		"    }",
		"  } catch (e) {",
		"    results.localStorage.error = String(e && e.message ? e.message : e);",
		"  }",
		"  try {",
		"    if (window.ReactNativeWebView && typeof window.ReactNativeWebView.postMessage === \"function\") {",
		"      window.ReactNativeWebView.postMessage(JSON.stringify({ type: " + msgType + ", results: results }));",
		"    }",
		"  } catch (e) {}",
		"  return results;",
		"})();",
	}

	return strings.Join(lines, "\n")
}
