package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/paveldk/go-blog-api/internal/config"
	"github.com/paveldk/go-blog-api/internal/logger"
)

// NewConnectSQLite opens a file-backed SQLite database, creating the file on
// first run. Intended for single-node deployments and local development.
// Foreign keys are switched on so post and comment ownership constraints
// hold the same way they do on PostgreSQL.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("creating sqlite file failed")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("opening sqlite connection failed")
		return nil, fmt.Errorf("opening sqlite connection: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("sqlite ping failed")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to sqlite")

	return &DB{
		DB:     conn,
		driver: "sqlite3",
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("creating sqlite file: %w", err)
		}
		f.Close()
	}

	return nil
}
