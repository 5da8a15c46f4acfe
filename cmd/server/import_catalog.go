package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog"
)

var importCatalogCmd = &cobra.Command{
	Use:   "import-catalog",
	Short: "Import classes, species and backgrounds from the SRD API",
	Long: `Fetch the SRD reference data from the D&D 5e API and upsert it into the
lookup tables. Existing rows are updated, nothing is removed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		svc, err := newServices(ctx, cfg)
		if err != nil {
			return err
		}
		defer svc.Close()

		output, err := svc.catalog.ImportCatalog(ctx, &catalog.ImportCatalogInput{})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	},
}
