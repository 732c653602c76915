// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/consent-bridge/models"
)

// GenerateInjectionScript compiles snapshot into a self-contained,
// immediately-invoked script for the embedded view.
//
// When executed, the script:
//  1. assigns the snapshot to window.axeptioConsentSync;
//  2. writes the token and sync timestamp to localStorage if it exists;
//  3. dispatches an axeptioTokenSync CustomEvent whose detail carries
//     token, platform and timestamp;
//  4. sets an axeptio_token cookie (path=/; SameSite=None; Secure).
//
// Each step runs in its own try block, so a sandboxed context that rejects
// storage or cookies does not stop the remaining steps or throw. All dynamic
// values are embedded through [QuoteJS].
func GenerateInjectionScript(snapshot models.ConsentSnapshot) string {
	data, err := jsonValue(snapshot)
	if err != nil {
		// ConsentSnapshot holds only strings, integers and booleans.
		data = "null"
	}
	timestamp := strconv.FormatInt(snapshot.Timestamp, 10)

	var b strings.Builder
	b.WriteString("(function() {\n")
	fmt.Fprintf(&b, "  var token = %s;\n", QuoteJS(snapshot.Token))
	fmt.Fprintf(&b, "  var platform = %s;\n", QuoteJS(string(snapshot.Platform)))
	fmt.Fprintf(&b, "  var timestamp = %s;\n", timestamp)
	b.WriteString("\n")

	fmt.Fprintf(&b, "  try {\n    window[%s] = %s;\n  } catch (e) {}\n\n", QuoteJS(GlobalSyncProperty), data)

	b.WriteString("  try {\n")
	b.WriteString("    if (window.localStorage) {\n")
	fmt.Fprintf(&b, "      window.localStorage.setItem(%s, token);\n", QuoteJS(StorageTokenKey))
	fmt.Fprintf(&b, "      window.localStorage.setItem(%s, String(timestamp));\n", QuoteJS(StorageTimestampKey))
	b.WriteString("    }\n  } catch (e) {}\n\n")

	b.WriteString("  try {\n")
	b.WriteString("    if (typeof window.dispatchEvent === \"function\" && typeof CustomEvent === \"function\") {\n")
	fmt.Fprintf(&b, "      window.dispatchEvent(new CustomEvent(%s, {\n", QuoteJS(SyncEventName))
	b.WriteString("        detail: { token: token, platform: platform, timestamp: timestamp }\n")
	b.WriteString("      }));\n")
	b.WriteString("    }\n  } catch (e) {}\n\n")

	b.WriteString("  try {\n")
	b.WriteString("    if (typeof document !== \"undefined\" && document.cookie !== undefined) {\n")
	fmt.Fprintf(&b, "      document.cookie = %s + encodeURIComponent(token) + %s;\n",
		QuoteJS(TokenCookieName+"="), QuoteJS("; path=/; SameSite=None; Secure"))
	b.WriteString("    }\n  } catch (e) {}\n")
	b.WriteString("})();")

	return b.String()
}
