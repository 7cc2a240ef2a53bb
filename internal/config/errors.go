package config

import "errors"

// Validation errors returned by the per-binary validate methods when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid outbound API settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty session database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid development-server settings
	// (for example, missing listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
