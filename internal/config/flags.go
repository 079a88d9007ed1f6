package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
)

// NetAddress represents a network address in "host:port" form and implements
// flag.Value so it can be used directly with the flag package.
type NetAddress struct {
	Host string
	Port string
}

// String returns the address in "host:port" format.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == "" {
		return ""
	}
	return net.JoinHostPort(a.Host, a.Port)
}

// Set parses a "host:port" string into the receiver. A bare ":port" value is
// accepted and leaves Host empty (bind on all interfaces).
func (a *NetAddress) Set(value string) error {
	host, port, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", value, err)
	}
	if port == "" {
		return fmt.Errorf("invalid address %q: port is required", value)
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags reads the server command-line flags and returns them as a
// partially filled *StructuredConfig, ready to be merged with the other
// configuration sources. Flags left at their zero value do not override
// values from higher-priority sources.
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	addr := new(NetAddress)
	fs.Var(addr, "a", "address and port to run server, format: host:port")

	dsn := fs.String("d", "", "database connection string (DSN)")
	driver := fs.String("driver", "", `database driver: "pgx" or "sqlite3"`)

	configPath := fs.String("config", "", "path to JSON config file")
	fs.StringVar(configPath, "c", *configPath, "path to JSON config file (shorthand)")

	tokenSignKey := fs.String("token-sign-key", "", "secret key used to sign auth tokens")
	tokenIssuer := fs.String("token-issuer", "", "issuer claim embedded in auth tokens")
	tokenDuration := fs.Duration("token-duration", 0, "auth token lifetime, e.g. 1h")
	requestTimeout := fs.Duration("request-timeout", 0, "max duration of a single request, e.g. 30s")

	// flag.CommandLine uses ExitOnError, so a parse failure terminates the
	// process with usage printed; no error to propagate here.
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			TokenSignKey:  *tokenSignKey,
			TokenIssuer:   *tokenIssuer,
			TokenDuration: *tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: strings.TrimSpace(*driver),
				DSN:    *dsn,
			},
		},
		Server: Server{
			HTTPAddress:    addr.String(),
			RequestTimeout: *requestTimeout,
		},
		JSONFilePath: *configPath,
	}
}
