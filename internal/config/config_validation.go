// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

var knownDrivers = []string{DriverPostgres, DriverSQLite, DriverMemory}

// validate checks that the merged server configuration can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if !slices.Contains(knownDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.Driver != DriverMemory && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache ttl must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Catalog.BaseURL == "" || cfg.Catalog.Timeout <= 0 {
		return ErrInvalidCatalogConfigs
	}

	if cfg.Workers.CatalogRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Adapter.Mode {
	case AdapterModeHTTP:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	case AdapterModeStub:
		if cfg.App.TokenSignKey == "" {
			return fmt.Errorf("%w: stub mode needs a token sign key", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAdapterConfigs, cfg.Adapter.Mode)
	}

	if cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: client dsn is required", ErrInvalidStorageConfigs)
	}

	return nil
}
