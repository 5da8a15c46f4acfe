package client

import (
	"fmt"
	"net/http"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

var listPlayersCmd = &cobra.Command{
	Use:   "list-players",
	Short: "List all players",
	RunE:  runListPlayers,
}

var (
	playerFirstName        string
	playerLastName         string
	playerContactInfo      string
	playerPreferredContact string
	playerTimeZone         string
)

var createPlayerCmd = &cobra.Command{
	Use:   "create-player",
	Short: "Create a player",
	Long: `Create a player. The server assigns the id.

  Example: create-player --first-name Laura --last-name Bailey --contact laura@example.com`,
	RunE: runCreatePlayer,
}

var deletePlayerCmd = &cobra.Command{
	Use:   "delete-player [player-id]",
	Short: "Delete a player that owns no characters",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeletePlayer,
}

func init() {
	createPlayerCmd.Flags().StringVar(&playerFirstName, "first-name", "", "first name (required)")
	createPlayerCmd.Flags().StringVar(&playerLastName, "last-name", "", "last name")
	createPlayerCmd.Flags().StringVar(&playerContactInfo, "contact", "", "contact info (required)")
	createPlayerCmd.Flags().StringVar(&playerPreferredContact, "preferred-contact", "", "preferred contact channel, e.g. email or discord")
	createPlayerCmd.Flags().StringVar(&playerTimeZone, "time-zone", "", "IANA time zone")
}

func runListPlayers(cmd *cobra.Command, _ []string) error {
	var resp struct {
		Players []*entities.Player `json:"players"`
	}
	if err := call(http.MethodGet, "/players", nil, &resp); err != nil {
		return fmt.Errorf("failed to list players: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCONTACT")
	for _, p := range resp.Players {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.FullName(), p.ContactInfo)
	}
	return w.Flush()
}

func runCreatePlayer(cmd *cobra.Command, _ []string) error {
	in := &entities.Player{
		FirstName:        playerFirstName,
		LastName:         playerLastName,
		ContactInfo:      playerContactInfo,
		PreferredContact: playerPreferredContact,
		TimeZone:         playerTimeZone,
	}

	var created entities.Player
	if err := call(http.MethodPost, "/players", in, &created); err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created player %s\n", created.String())
	return nil
}

func runDeletePlayer(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid player id %q", args[0])
	}

	if err := call(http.MethodDelete, fmt.Sprintf("/players/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted player %d\n", id)
	return nil
}
