package main

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ghuser/fridgepal/migrations/fridge"
	"github.com/ghuser/fridgepal/pkg/config"
	"github.com/ghuser/fridgepal/pkg/migrator"
)

func main() {
	cmd := &cli.Command{
		Name:  "migrate",
		Usage: "Manage the fridge_items schema in the Postgres database at DATABASE_URL",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Apply all pending migrations",
				Action: withDB(migrator.Up),
			},
			{
				Name:   "down",
				Usage:  "Roll back the most recent migration",
				Action: withDB(migrator.Down),
			},
			{
				Name:   "status",
				Usage:  "Print the applied state of every migration",
				Action: withDB(migrator.Status),
			},
		},
		DefaultCommand: "up",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

// withDB loads the configuration, opens the database and runs fn against the
// embedded fridge migrations.
func withDB(fn func(*sql.DB, fs.FS) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := migrator.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close() //nolint:errcheck

		if err := fn(db, fridge.FS); err != nil {
			return err
		}
		v, err := migrator.Version(ctx, db)
		if err != nil {
			return err
		}
		slog.Info("migrations done", "command", cmd.Name, "version", v)
		return nil
	}
}
