// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags and shown by /api/version and the
// support CLI header.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are reported as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// VersionInfo is the JSON body of /api/version.
type VersionInfo struct {
	Version    string `json:"version"`
	BuildDate  string `json:"buildDate"`
	Commit     string `json:"commit"`
	SDKVersion string `json:"sdkVersion"`
}

// VersionInfo combines the build metadata with the consent SDK version.
func (a AppBuildInfo) VersionInfo(sdkVersion string) VersionInfo {
	return VersionInfo{
		Version:    a.buildVersion,
		BuildDate:  a.buildDate,
		Commit:     a.buildCommit,
		SDKVersion: sdkVersion,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
