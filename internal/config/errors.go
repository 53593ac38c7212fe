package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token or hashing settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates missing listen addresses or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCatalogConfigs indicates an unusable movie catalog setup.
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, unknown mode or missing HTTP address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
