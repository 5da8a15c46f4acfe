// Package main is the entry point for the rpg-campaigns server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/cmd/server/client"
	"github.com/KirkDiggler/rpg-campaigns/internal/config"
)

var (
	envFile string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-campaigns",
	Short: "D&D campaign manager",
	Long: `rpg-campaigns tracks players, campaigns and characters for a D&D group,
serves them over an HTTP API and answers a fixed set of reports about the table.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "optional .env file read before the environment")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides RPG_DB_PATH)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCatalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the env file and environment, applies flag overrides and
// installs the logger
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("db") {
		cfg.DBPath = dbPath
	}
	if cmd.Flags().Changed("port") {
		cfg.HTTPPort = httpPort
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.SetupLogging(os.Stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}
