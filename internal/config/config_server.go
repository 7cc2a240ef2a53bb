package config

import (
	"fmt"
	"time"
)

// ServerConfig is the development-server view of the merged configuration.
type ServerConfig struct {
	// Address is the TCP address the server listens on.
	Address string
	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	RequestTimeout time.Duration
	// Version is the version string reported by the server.
	Version string
}

// GetServerConfig builds and validates the development-server view of the
// merged configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Address:        cfg.Server.Address,
		RequestTimeout: cfg.Server.RequestTimeout,
		Version:        cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
