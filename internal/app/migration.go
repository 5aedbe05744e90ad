package app

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// ApplyMigrations runs every pending goose migration from migrationFS.
func ApplyMigrations(connStr string, migrationFS embed.FS) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err == nil {
		slog.Info("Database migrated", "version", version)
	}
	return nil
}
