package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"support-router/pkg/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrateUp,
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Postgres.Host == "" || cfg.Postgres.Database == "" {
		return fmt.Errorf("migrate: postgres.host and postgres.database are required")
	}

	db, err := postgres.Open(cmd.Context(), postgres.Config{DSN: cfg.PostgresDSN()})
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := postgres.MigrateUp(db)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if applied {
		fmt.Fprintln(cmd.OutOrStdout(), "migrate up: ok")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "migrate up: no change")
	}
	return nil
}
