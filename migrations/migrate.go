// Package migrations embeds the goose schema migrations for every database
// the application talks to.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

// Set names a goose dialect and the embedded directory holding its
// migrations.
type Set struct {
	Dialect string
	Dir     string
}

var (
	// Postgres migrates the server Credential Store on PostgreSQL.
	Postgres = Set{Dialect: "pgx", Dir: "postgres"}
	// SQLite migrates the server Credential Store on SQLite.
	SQLite = Set{Dialect: "sqlite3", Dir: "sqlite"}
	// Client migrates the terminal client's session database.
	Client = Set{Dialect: "sqlite3", Dir: "client"}
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies all pending migrations of set to db.
func Migrate(db *sql.DB, set Set) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(set.Dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, set.Dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
