package config

import (
	"fmt"
	"time"
)

// ClientAPI holds the outbound API settings used by the client binary.
type ClientAPI struct {
	// BaseURL is the API root handed to the SDK.
	BaseURL string
	// UserAgent overrides the SDK's User-Agent header when non-empty.
	UserAgent string
	// RequestTimeout is the per-request timeout handed to the SDK.
	RequestTimeout time.Duration
}

// ClientStorage groups the client's local persistence settings.
type ClientStorage struct {
	// DSN is the SQLite path the session store opens.
	DSN string
}

// ClientApp contains application-level client settings.
type ClientApp struct {
	// Version is the version string shown by the client.
	Version string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// API contains the outbound API connection settings.
	API ClientAPI
	// Storage contains client storage settings.
	Storage ClientStorage
	// App contains application-level client settings.
	App ClientApp
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			UserAgent:      cfg.API.UserAgent,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.DSN,
		},
		App: ClientApp{
			Version: cfg.App.Version,
		},
	}

	return clientCfg, clientCfg.validate()
}
