// Package db opens the mypace SQLite database and applies schema
// migrations. All state (profile, logs, catalog, favorites) lives in a
// single file so the CLI needs no external services.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection avoids SQLITE_BUSY between the migration step
	// and the first command that touches the log tables.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;`); err != nil {
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}
	return db, nil
}
