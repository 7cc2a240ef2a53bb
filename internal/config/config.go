// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package config

import (
	"os"
	"path/filepath"
	"time"

	grustnogram "github.com/grustnolabs/go-grustnogram"
)

// StructuredConfig is the top-level configuration container shared by the
// bundled binaries. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags and an
// optional JSON file, with built-in defaults filling whatever remains.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds settings of the outbound Grustnogram API connection.
	API API `envPrefix:"API_"`

	// Storage holds configuration of the local persistence layer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen settings of the bundled development server.
	Server Server `envPrefix:"SERVER_"`

	// App holds application-level settings shared by the binaries.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the outbound connection settings for the Grustnogram API.
type API struct {
	// BaseURL is the root of the API, scheme included
	// (e.g. "https://api.grustnogram.ru").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// UserAgent overrides the User-Agent header sent with every request.
	// Empty keeps the SDK default.
	// Env: API_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds configuration of the local persistence layer.
type Storage struct {
	// DSN is the path of the SQLite database the session is kept in.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Server holds listen settings of the bundled development server.
type Server struct {
	// Address is the TCP address the server listens on, in "host:port"
	// format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "15s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds application-level settings shared by the binaries.
type App struct {
	// Version is the version string reported by the binaries. Normally
	// injected at build time via ldflags; the env var wins when set.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig is the lowest-priority source: the values that make the
// binaries usable with no configuration at all.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			BaseURL:        grustnogram.DefaultBaseURL,
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DSN: defaultSessionDSN(),
		},
		Server: Server{
			Address:        "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
	}
}

// defaultSessionDSN keeps the session database under the user's home
// directory, falling back to the working directory when home is unknown.
func defaultSessionDSN() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "grustnogram.db"
	}
	return filepath.Join(home, ".grustnogram", "sessions.db")
}
