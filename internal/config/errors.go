package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when no token signing secret was
	// configured via any source.
	ErrNoTokenSignKey = errors.New("token sign key is required: set APP_TOKEN_SIGN_KEY or -token-sign-key")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// configured via any source.
	ErrNoDatabaseDSN = errors.New("database DSN is required: set STORAGE_DB_DATABASE_URI or -d")

	// ErrUnknownDBDriver is returned when the configured driver is neither
	// "pgx" nor "sqlite3".
	ErrUnknownDBDriver = errors.New(`unknown database driver: must be "pgx" or "sqlite3"`)

	// ErrNoServerBaseURL is returned by the client config when the server
	// base URL is empty.
	ErrNoServerBaseURL = errors.New("server base URL is required: set CLIENT_SERVER_URL or -s")
)
