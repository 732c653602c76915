// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// validate checks that the merged [StructuredConfig] can start the bridge.
// All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if _, err := cfg.App.PlatformInfo(); err != nil {
		errs = append(errs, err)
	}
	if cfg.App.IsolationMajorVersion < 0 {
		errs = append(errs, fmt.Errorf("%w: negative isolation major version", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("%w: driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs))
	}

	if !isAbsoluteURL(cfg.Adapter.NativeAddress) || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: native address %q", ErrInvalidAdapterConfigs, cfg.Adapter.NativeAddress))
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if !isAbsoluteURL(cfg.Adapter.HTTPAddress) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.Operator == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
