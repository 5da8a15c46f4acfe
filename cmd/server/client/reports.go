package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest/v1alpha1"
)

var listReportsCmd = &cobra.Command{
	Use:   "list-reports",
	Short: "List the available reports",
	RunE:  runListReports,
}

var reportCmd = &cobra.Command{
	Use:   "report [name]",
	Short: "Run a report",
	Long: `Run a report and print its rows as JSON.

  Example: report class-distribution`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runListReports(cmd *cobra.Command, _ []string) error {
	var resp struct {
		Reports []entities.ReportName `json:"reports"`
	}
	if err := call(http.MethodGet, "/reports", nil, &resp); err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	for _, name := range resp.Reports {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	var resp v1alpha1.ReportResponse
	if err := call(http.MethodGet, "/reports/"+url.PathEscape(args[0]), nil, &resp); err != nil {
		return fmt.Errorf("failed to run report %s: %w", args[0], err)
	}

	if resp.Cached && resp.CachedAt != nil {
		cmd.PrintErrf("served from cache, computed at %s\n", resp.CachedAt.Format("2006-01-02 15:04:05"))
	}
	return printJSON(cmd, resp.Rows)
}
