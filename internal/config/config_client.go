package config

import (
	"flag"
	"os"
	"time"
)

// Client-side defaults.
const (
	DefaultClientServerURL      = "http://localhost:8080"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ClientConfig holds the configuration for the terminal reader client.
type ClientConfig struct {
	// Adapter holds the settings for the HTTP adapter that talks to the
	// blog server.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// ClientAdapter configures the outbound HTTP client.
type ClientAdapter struct {
	// BaseURL is the root URL of the blog server, e.g. "http://localhost:8080".
	// Env: CLIENT_SERVER_URL
	BaseURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the terminal client configuration from environment
// variables and command-line flags, applies defaults, and validates it.
// Flags win over environment variables for the client since they are the
// primary way a reader points the client at a server.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	parseClientFlags(flag.CommandLine, os.Args[1:], cfg)

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultClientServerURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	if cfg.Adapter.BaseURL == "" {
		return nil, ErrNoServerBaseURL
	}

	return cfg, nil
}

func parseClientFlags(fs *flag.FlagSet, args []string, cfg *ClientConfig) {
	serverURL := fs.String("s", "", "blog server base URL, e.g. http://localhost:8080")
	timeout := fs.Duration("request-timeout", 0, "max duration of a single request, e.g. 15s")

	_ = fs.Parse(args)

	if *serverURL != "" {
		cfg.Adapter.BaseURL = *serverURL
	}
	if *timeout != 0 {
		cfg.Adapter.RequestTimeout = *timeout
	}
}
