package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest/v1alpha1"
)

var listDetails bool

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List all characters",
	RunE:  runListCharacters,
}

var (
	characterLevel        int
	characterPlayerID     int
	characterCampaignID   string
	characterClassID      string
	characterSubclassID   string
	characterSpeciesID    string
	characterSubspeciesID string
	characterBackgroundID string
	characterScores       string
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character [name]",
	Short: "Create a character",
	Long: `Create a character. The name is the character's id.

  Example: create-character "Vex'ahlia" --player 2 --campaign vox-machina --level 5 \
    --class Ranger --species Elf --scores 10,18,12,10,14,10`,
	Args: cobra.ExactArgs(1),
	RunE: runCreateCharacter,
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character [name]",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteCharacter,
}

var rollAbilitiesCmd = &cobra.Command{
	Use:   "roll-abilities",
	Short: "Roll ability scores with 4d6 drop lowest",
	RunE:  runRollAbilities,
}

func init() {
	listCharactersCmd.Flags().BoolVar(&listDetails, "details", false, "include the owning player's name")

	createCharacterCmd.Flags().IntVar(&characterLevel, "level", 1, "character level")
	createCharacterCmd.Flags().IntVar(&characterPlayerID, "player", 0, "owning player id (required)")
	createCharacterCmd.Flags().StringVar(&characterCampaignID, "campaign", "", "campaign id (required)")
	createCharacterCmd.Flags().StringVar(&characterClassID, "class", "", "class id")
	createCharacterCmd.Flags().StringVar(&characterSubclassID, "subclass", "", "subclass id")
	createCharacterCmd.Flags().StringVar(&characterSpeciesID, "species", "", "species id")
	createCharacterCmd.Flags().StringVar(&characterSubspeciesID, "subspecies", "", "subspecies id")
	createCharacterCmd.Flags().StringVar(&characterBackgroundID, "background", "", "background id")
	createCharacterCmd.Flags().StringVar(&characterScores, "scores", "10,10,10,10,10,10", "ability scores in STR,DEX,CON,INT,WIS,CHA order")
}

func runListCharacters(cmd *cobra.Command, _ []string) error {
	path := "/characters"
	if listDetails {
		path += "?details=true"
	}

	var resp struct {
		Characters []*entities.CharacterDetails `json:"characters"`
	}
	if err := call(http.MethodGet, path, nil, &resp); err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	header := "NAME\tLEVEL\tCLASS\tSPECIES\tCAMPAIGN"
	if listDetails {
		header += "\tPLAYER"
	}
	_, _ = fmt.Fprintln(w, header)
	for _, c := range resp.Characters {
		line := fmt.Sprintf("%s\t%d\t%s\t%s\t%s", c.ID, c.Level, c.FullClass(), c.FullSpecies(), c.CampaignID)
		if listDetails {
			line += "\t" + strings.TrimSpace(c.PlayerFirstName+" "+c.PlayerLastName)
		}
		_, _ = fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func parseScores(raw string) (entities.AbilityScores, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != len(entities.Abilities) {
		return entities.AbilityScores{}, fmt.Errorf("expected %d scores, got %d", len(entities.Abilities), len(parts))
	}

	scores := make([]int, len(parts))
	for i, part := range parts {
		score, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return entities.AbilityScores{}, fmt.Errorf("invalid %s score %q", entities.Abilities[i], part)
		}
		scores[i] = score
	}
	return entities.AbilityScoresFromSlice(scores), nil
}

func runCreateCharacter(cmd *cobra.Command, args []string) error {
	scores, err := parseScores(characterScores)
	if err != nil {
		return err
	}

	in := &entities.Character{
		ID:            args[0],
		Level:         characterLevel,
		ClassID:       characterClassID,
		SubclassID:    characterSubclassID,
		SpeciesID:     characterSpeciesID,
		SubspeciesID:  characterSubspeciesID,
		BackgroundID:  characterBackgroundID,
		PlayerID:      characterPlayerID,
		CampaignID:    characterCampaignID,
		AbilityScores: scores,
	}

	var created entities.Character
	if err := call(http.MethodPost, "/characters", in, &created); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created character %s\n", created.String())
	return nil
}

func runDeleteCharacter(cmd *cobra.Command, args []string) error {
	if err := call(http.MethodDelete, "/characters/"+url.PathEscape(args[0]), nil, nil); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted character %s\n", args[0])
	return nil
}

func runRollAbilities(cmd *cobra.Command, _ []string) error {
	var resp v1alpha1.RollAbilityScoresResponse
	if err := call(http.MethodPost, "/characters/roll-ability-scores", nil, &resp); err != nil {
		return fmt.Errorf("failed to roll ability scores: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Ability Score Rolls (4d6 drop lowest):")
	for _, roll := range resp.Rolls {
		_, _ = fmt.Fprintf(out, "  %s: kept %v, dropped %d, total %s\n",
			strings.ToUpper(roll.Ability), roll.Kept, roll.Dropped, entities.FormatAbility(roll.Total))
	}
	return nil
}
