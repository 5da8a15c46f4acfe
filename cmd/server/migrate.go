package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/storage/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		db, err := sqlite.Open(cmd.Context(), cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		slog.Info("Database is up to date", "path", cfg.DBPath)
		return nil
	},
}
