package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. The underlying validator error is wrapped.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing API key hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a malformed listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidClientConfigs indicates invalid API client settings
	// (for example, missing server URL or API key).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
