// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/consent-bridge/models"
)

// StructuredConfig is the top-level configuration of the consent bridge. It
// is populated by merging environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the host platform description and support token settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings for diagnostic records.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts for HTTP and gRPC.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the addresses of the native SDK host bridge (server side)
	// and of the consent bridge itself (support CLI side).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Platform is the host platform identifier, "ios" or "android".
	// Env: APP_PLATFORM
	Platform string `env:"PLATFORM"`

	// PlatformVersion is the raw OS version string reported by the host
	// (e.g. "17.5.1").
	// Env: APP_PLATFORM_VERSION
	PlatformVersion string `env:"PLATFORM_VERSION"`

	// IsolationMajorVersion is the first iOS major version treated as having
	// isolated WebView storage. Zero selects the built-in threshold.
	// Env: APP_ISOLATION_MAJOR_VERSION
	IsolationMajorVersion int `env:"ISOLATION_MAJOR_VERSION"`

	// FingerprintKey keys the BLAKE2b token fingerprints written to logs and
	// storage.
	// Env: APP_FINGERPRINT_KEY
	FingerprintKey string `env:"FINGERPRINT_KEY"`

	// TokenSignKey is the secret used to sign and verify support JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of support JWTs.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued support JWT.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Operator is the subject of support JWTs issued by the CLI.
	// Env: APP_OPERATOR
	Operator string `env:"OPERATOR"`

	// Version is the application version exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// PlatformInfo converts the configured platform and version into
// [models.PlatformInfo].
func (a App) PlatformInfo() (models.PlatformInfo, error) {
	p, err := models.ParsePlatform(a.Platform)
	if err != nil {
		return models.PlatformInfo{}, fmt.Errorf("%w: platform %q: %w", ErrInvalidAppConfigs, a.Platform, err)
	}

	return models.PlatformInfo{Platform: p, Version: a.PlatformVersion}, nil
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the HTTP listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health listen address in "host:port" format.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the driver-specific connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds outbound connection settings.
type Adapter struct {
	// NativeAddress is the base URL of the native SDK host bridge.
	// Env: ADAPTER_NATIVE_ADDRESS
	NativeAddress string `env:"NATIVE_ADDRESS"`

	// HTTPAddress is the consent bridge URL used by the support CLI.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// DiagnosticsInterval is the period of the diagnostics snapshot job.
	// A negative value disables the job.
	// Env: WORKERS_DIAGNOSTICS_INTERVAL
	DiagnosticsInterval time.Duration `env:"DIAGNOSTICS_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the bridge configuration.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
