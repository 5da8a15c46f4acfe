package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

var listSpeciesCmd = &cobra.Command{
	Use:   "list-species",
	Short: "List all catalog species and their subspecies",
	RunE:  runListSpecies,
}

func runListSpecies(cmd *cobra.Command, _ []string) error {
	var resp struct {
		Species []*entities.Species `json:"species"`
	}
	if err := call(http.MethodGet, "/catalog/species", nil, &resp); err != nil {
		return fmt.Errorf("failed to list species: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, species := range resp.Species {
		_, _ = fmt.Fprintf(out, "%s\n", species.String())

		var subspecies struct {
			IDs []string `json:"ids"`
		}
		if err := call(http.MethodGet, "/catalog/species/"+url.PathEscape(species.ID)+"/subspecies", nil, &subspecies); err != nil {
			return fmt.Errorf("failed to list subspecies of %s: %w", species.ID, err)
		}
		for _, sub := range subspecies.IDs {
			_, _ = fmt.Fprintf(out, "   - %s\n", sub)
		}
	}
	return nil
}
