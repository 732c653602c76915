// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webview

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/consent-bridge/internal/utils"
	"github.com/MKhiriev/consent-bridge/models"
)

// TokenizeURL returns baseURL with the axeptio_token, axeptio_platform and
// axeptio_sync query parameters set, overwriting earlier values of the same
// keys. Every other query pair keeps its original position and encoding; the
// path and fragment are left untouched.
//
// baseURL must be absolute (have a scheme); otherwise an error wrapping
// [ErrInvalidURL] is returned.
func TokenizeURL(baseURL, token string, platform models.Platform) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "" && u.Path == "") {
		return "", fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidURL, baseURL)
	}

	added := [][2]string{
		{QueryParamToken, token},
		{QueryParamPlatform, string(platform)},
		{QueryParamSync, strconv.FormatInt(utils.NowMillis(), 10)},
	}

	pairs := make([]string, 0, 8)
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" || isTokenizerKey(pair) {
			continue
		}
		pairs = append(pairs, pair)
	}
	for _, kv := range added {
		pairs = append(pairs, url.QueryEscape(kv[0])+"="+url.QueryEscape(kv[1]))
	}

	u.RawQuery = strings.Join(pairs, "&")
	u.ForceQuery = false

	return u.String(), nil
}

func isTokenizerKey(pair string) bool {
	rawKey, _, _ := strings.Cut(pair, "=")
	key, err := url.QueryUnescape(rawKey)
	if err != nil {
		key = rawKey
	}

	switch key {
	case QueryParamToken, QueryParamPlatform, QueryParamSync:
		return true
	}
	return false
}
