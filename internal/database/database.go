package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

// EnvDatabasePath overrides the database file location. It is set by the
// test suites so every test run gets its own isolated file.
const EnvDatabasePath = "LOJA_DATABASE_PATH"

// DefaultDatabasePath is the file used when no override is present.
const DefaultDatabasePath = "loja.db"

// Open returns the connection handle for the configured database file.
// It reads the path from the environment variable first, falling back to
// the default file in the working directory.
func Open() (*sql.DB, error) {
	path := os.Getenv(EnvDatabasePath)
	if path == "" {
		path = DefaultDatabasePath
	}
	return OpenPath(path)
}

// OpenPath creates and configures a connection handle for any database
// file. Foreign keys are enforced on every connection through the DSN
// pragma, and rows are read back by the column order pinned in each
// statement's SELECT list.
func OpenPath(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer per file; one open connection keeps
	// the driver from returning SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	// Ping the database to verify the connection.
	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database at %s: %v", path, err)
		return nil, err
	}

	return db, nil
}
