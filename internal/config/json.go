package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations. It exists so the config file can say "30s"
// where the merged config wants a time.Duration.
type StructuredJSONConfig struct {
	API struct {
		BaseURL        string   `json:"base_url"`
		UserAgent      string   `json:"user_agent"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			UserAgent:      jsonCfg.API.UserAgent,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		App: App{
			Version: jsonCfg.App.Version,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
