package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:wordwise.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/wordwise?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS vocabularies (
  name TEXT PRIMARY KEY,
  words_json TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
  id TEXT PRIMARY KEY,
  mode TEXT NOT NULL,
  vocabulary_name TEXT NOT NULL,
  total INTEGER NOT NULL,
  correct_count INTEGER NOT NULL,
  score REAL NOT NULL,
  duration_sec INTEGER NOT NULL DEFAULT 0,
  wrong_json TEXT NOT NULL DEFAULT '[]',
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS wrong_answers (
  en_key TEXT PRIMARY KEY,
  en TEXT NOT NULL,
  cn TEXT NOT NULL DEFAULT '',
  count INTEGER NOT NULL DEFAULT 0,
  answers_json TEXT NOT NULL DEFAULT '[]',
  mastered INTEGER NOT NULL DEFAULT 0,
  first_wrong_at INTEGER NOT NULL,
  last_wrong_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS vocabularies (
  name TEXT PRIMARY KEY,
  words_json TEXT NOT NULL,
  created_at BIGINT NOT NULL,
  updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
  id TEXT PRIMARY KEY,
  mode TEXT NOT NULL,
  vocabulary_name TEXT NOT NULL,
  total INTEGER NOT NULL,
  correct_count INTEGER NOT NULL,
  score DOUBLE PRECISION NOT NULL,
  duration_sec INTEGER NOT NULL DEFAULT 0,
  wrong_json TEXT NOT NULL DEFAULT '[]',
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS wrong_answers (
  en_key TEXT PRIMARY KEY,
  en TEXT NOT NULL,
  cn TEXT NOT NULL DEFAULT '',
  count INTEGER NOT NULL DEFAULT 0,
  answers_json TEXT NOT NULL DEFAULT '[]',
  mastered INTEGER NOT NULL DEFAULT 0,
  first_wrong_at BIGINT NOT NULL,
  last_wrong_at BIGINT NOT NULL
);
`
