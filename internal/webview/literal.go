// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webview

import (
	"encoding/json"
)

// QuoteJS encodes s as a double-quoted JavaScript string literal that is safe
// to splice into generated script text, including script text that ends up
// inside an HTML <script> element.
//
// Quotes, backslashes and control characters are escaped, as are '<', '>',
// '&', U+2028 and U+2029, so the literal can neither terminate early, break
// across lines, nor close an enclosing script tag. Evaluating the literal
// yields s exactly for any valid UTF-8 input; invalid bytes are replaced by
// U+FFFD.
func QuoteJS(s string) string {
	// json.Marshal on a string cannot fail and applies HTML escaping.
	b, _ := json.Marshal(s)
	return string(b)
}

// jsonValue encodes v as a JSON expression with the same escaping guarantees
// as [QuoteJS] for every string it contains.
func jsonValue(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
