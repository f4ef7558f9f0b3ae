package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations runs all pending goose migrations from files against dbURL.
func RunMigrations(dbURL string, files fs.FS) error {
	db, err := Open(dbURL)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck

	return Up(db, files)
}

// Open opens a database/sql connection through the pgx driver.
func Open(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Up applies pending migrations on an open connection.
func Up(db *sql.DB, files fs.FS) error {
	return run(files, "up", func() error { return goose.Up(db, ".") })
}

// Down rolls back the most recent migration.
func Down(db *sql.DB, files fs.FS) error {
	return run(files, "down", func() error { return goose.Down(db, ".") })
}

// Status logs the applied state of every migration through goose's logger.
func Status(db *sql.DB, files fs.FS) error {
	return run(files, "read status of", func() error { return goose.Status(db, ".") })
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

func run(files fs.FS, verb string, fn func() error) error {
	goose.SetBaseFS(files)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := fn(); err != nil {
		return fmt.Errorf("failed to %s migrations: %w", verb, err)
	}
	return nil
}
