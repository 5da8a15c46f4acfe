package client

import (
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

var listCampaignsCmd = &cobra.Command{
	Use:   "list-campaigns",
	Short: "List all campaigns",
	RunE:  runListCampaigns,
}

func runListCampaigns(cmd *cobra.Command, _ []string) error {
	var resp struct {
		Campaigns []*entities.Campaign `json:"campaigns"`
	}
	if err := call(http.MethodGet, "/campaigns", nil, &resp); err != nil {
		return fmt.Errorf("failed to list campaigns: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSETTING\tMAX PLAYERS\tMEETS")
	for _, c := range resp.Campaigns {
		meets := "-"
		if c.MeetingTime != nil {
			meets = c.MeetingTime.Format(time.RFC1123)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.ID, c.Setting, c.MaxPlayers, meets)
	}
	return w.Flush()
}
