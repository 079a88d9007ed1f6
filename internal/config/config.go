// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Defaults applied to any field left unset by every configured source.
const (
	// DefaultHTTPAddress is the address the HTTP server binds to when no
	// address is configured.
	DefaultHTTPAddress = ":8080"

	// DefaultTokenIssuer is the "iss" claim written into issued tokens.
	DefaultTokenIssuer = "go-blog-api"

	// DefaultTokenDuration is the fixed token lifetime: one hour from
	// issuance. There is no refresh; expiry is the only invalidation.
	DefaultTokenDuration = time.Hour

	// DefaultDBDriver selects the PostgreSQL stdlib driver registered by pgx.
	DefaultDBDriver = "pgx"

	// DefaultRequestTimeout bounds a single inbound request.
	DefaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the root configuration of the blog server, assembled
// by merging environment variables, command-line flags, and an optional
// JSON file. Nested sections declare an envPrefix; scalar fields declare
// the env variable directly (caarlos0/env tags).
type StructuredConfig struct {
	// App carries the token signing secret and token parameters.
	App App `envPrefix:"APP_"`

	// Storage configures the relational database backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server configures the HTTP listener.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath optionally points at a JSON config file to merge in
	// after env and flags. Set through the CONFIG environment variable or
	// the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App controls the JWT lifecycle.
type App struct {
	// TokenSignKey signs and verifies every JWT. It is read once at
	// startup; restarting with a new secret invalidates all outstanding
	// tokens. Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer becomes the "iss" claim of issued tokens and is checked
	// on every authenticated request. Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid ("1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB selects and configures the SQL backend.
type DB struct {
	// Driver is "pgx" for PostgreSQL or "sqlite3" for the embedded store.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string: a postgres:// URI for pgx, a file path
	// for sqlite3. Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server configures the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout caps how long a single inbound request may run
	// ("30s", "1m"). Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// Sources are merged in priority order, first non-zero value winning:
// environment variables, then flags, then the JSON file named by either.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
