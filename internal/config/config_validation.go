// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself carries no invariants: the per-binary views
// ([ClientConfig], [ServerConfig]) validate what they actually use.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout == 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
