package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration to support human-readable values in JSON
// config files, e.g. "1h" or "30s". Plain numbers are treated as
// nanoseconds, matching time.Duration's native representation.
type Duration struct {
	time.Duration
}

// UnmarshalJSON parses either a duration string ("1h30m") or a number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration type %T", value)
	}
}

// MarshalJSON renders the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// jsonConfig mirrors StructuredConfig with JSON tags and Duration wrappers.
// It exists so the JSON file can use readable duration strings without
// leaking the wrapper type into the rest of the application.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app"`
	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"database_uri"`
		} `json:"db"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
}

// parseJSON reads the configuration file at path and converts it into a
// *StructuredConfig suitable for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %q: %w", path, err)
	}

	var fileCfg jsonConfig
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %q: %w", path, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  fileCfg.App.TokenSignKey,
			TokenIssuer:   fileCfg.App.TokenIssuer,
			TokenDuration: fileCfg.App.TokenDuration.Duration,
		},
		Storage: Storage{
			DB: DB{
				Driver: fileCfg.Storage.DB.Driver,
				DSN:    fileCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: fileCfg.Server.RequestTimeout.Duration,
		},
	}, nil
}
