package platform

import (
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MajorVersion extracts the leading numeric component of a dot-separated
// version string. Well-formed versions ("17", "17.5.1", "v16.4") are parsed
// with semver; anything else falls back to the leading integer of the first
// component, so "15.2.1.build.12345" yields 15 and "14beta" yields 14.
//
// ok is false when no number can be extracted.
func MajorVersion(version string) (major int, ok bool) {
	version = strings.TrimSpace(version)
	if version == "" {
		return 0, false
	}

	if v, err := semver.NewVersion(version); err == nil && v.Major() <= math.MaxInt32 {
		return int(v.Major()), true
	}

	first, _, _ := strings.Cut(version, ".")
	return leadingInt(first)
}

func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
