package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

var listBackgroundsCmd = &cobra.Command{
	Use:   "list-backgrounds",
	Short: "List all catalog backgrounds",
	RunE:  runListBackgrounds,
}

func runListBackgrounds(cmd *cobra.Command, _ []string) error {
	var resp struct {
		IDs []string `json:"ids"`
	}
	if err := call(http.MethodGet, "/catalog/backgrounds", nil, &resp); err != nil {
		return fmt.Errorf("failed to list backgrounds: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Found %d backgrounds: %s\n", len(resp.IDs), strings.Join(resp.IDs, ", "))
	return nil
}
