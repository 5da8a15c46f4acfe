package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

var spellcastersOnly bool

var listClassesCmd = &cobra.Command{
	Use:   "list-classes",
	Short: "List all catalog classes",
	Long:  `List the classes in the reference catalog with their casting and primary stats and subclasses.`,
	RunE:  runListClasses,
}

func init() {
	listClassesCmd.Flags().BoolVar(&spellcastersOnly, "spellcasters-only", false, "Only show spellcasting classes")
}

func runListClasses(cmd *cobra.Command, _ []string) error {
	var resp struct {
		Classes []*entities.DnDClass `json:"classes"`
	}
	if err := call(http.MethodGet, "/catalog/classes", nil, &resp); err != nil {
		return fmt.Errorf("failed to list classes: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, class := range resp.Classes {
		if spellcastersOnly && !class.IsCaster() {
			continue
		}

		_, _ = fmt.Fprintf(out, "%s\n", class.String())
		if class.Summary != "" {
			_, _ = fmt.Fprintf(out, "   %s\n", class.Summary)
		}
		if class.PrimaryStat != "" {
			_, _ = fmt.Fprintf(out, "   Primary: %s  Secondary: %s\n", class.PrimaryStat, class.SecondaryStat)
		}
		if class.IsCaster() {
			_, _ = fmt.Fprintf(out, "   Spellcasting: %s\n", class.CastingStat)
		}

		var subclasses struct {
			IDs []string `json:"ids"`
		}
		if err := call(http.MethodGet, "/catalog/classes/"+url.PathEscape(class.ID)+"/subclasses", nil, &subclasses); err != nil {
			return fmt.Errorf("failed to list subclasses of %s: %w", class.ID, err)
		}
		for _, sub := range subclasses.IDs {
			_, _ = fmt.Fprintf(out, "   - %s\n", sub)
		}
	}
	return nil
}
