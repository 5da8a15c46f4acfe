package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Fixture ids used by SeedCampaignData
const (
	PlayerSam    = 1
	PlayerLaura  = 2
	PlayerLiam   = 3
	PlayerNoChar = 4

	CampaignRealms   = "lost-mine"
	CampaignEberron  = "sharn-nights"
	CampaignRavnica  = "guild-wars"
	CampaignNoPlayer = "empty-table"
)

// TestPlayers returns the players inserted by SeedCampaignData
func TestPlayers() []*entities.Player {
	return []*entities.Player{
		{ID: PlayerSam, FirstName: "Sam", LastName: "Riegel", PreferredContact: "email", ContactInfo: "sam@example.com", TimeZone: "America/Los_Angeles"},
		{ID: PlayerLaura, FirstName: "Laura", LastName: "Bailey", PreferredContact: "discord", ContactInfo: "laura#0001", TimeZone: "America/Chicago"},
		{ID: PlayerLiam, FirstName: "Liam", PreferredContact: "phone", ContactInfo: "555-0100"},
		{ID: PlayerNoChar, FirstName: "Ashley", LastName: "Johnson", ContactInfo: "ashley@example.com"},
	}
}

// TestCampaigns returns the campaigns inserted by SeedCampaignData
func TestCampaigns() []*entities.Campaign {
	return []*entities.Campaign{
		{ID: CampaignRealms, Setting: "Forgotten Realms", Synopsis: "Goblins on the Triboar Trail", MaxPlayers: 5},
		{ID: CampaignEberron, Setting: "Eberron", Synopsis: "Noir in the city of towers", MaxPlayers: 4},
		{ID: CampaignRavnica, Setting: "Ravnica", MaxPlayers: 6},
		{ID: CampaignNoPlayer, Setting: "Homebrew", MaxPlayers: 3},
	}
}

// TestCharacters returns the characters inserted by SeedCampaignData.
// Levels are chosen so each species has a clear above-average member.
func TestCharacters() []*entities.Character {
	return []*entities.Character{
		{
			ID: "Bramble", Level: 3, ClassID: "Druid", SubclassID: "Circle of the Land",
			SpeciesID: "Halfling", SubspeciesID: "Lightfoot Halfling", BackgroundID: "Hermit",
			PlayerID: PlayerSam, CampaignID: CampaignRealms,
			AbilityScores: entities.AbilityScores{Strength: 8, Dexterity: 14, Constitution: 13, Intelligence: 10, Wisdom: 16, Charisma: 11},
		},
		{
			ID: "Kettle", Level: 7, ClassID: "Fighter", SubclassID: "Champion",
			SpeciesID: "Halfling", SubspeciesID: "Stout Halfling", BackgroundID: "Soldier",
			PlayerID: PlayerSam, CampaignID: CampaignEberron,
			AbilityScores: entities.AbilityScores{Strength: 15, Dexterity: 14, Constitution: 16, Intelligence: 9, Wisdom: 10, Charisma: 8},
		},
		{
			ID: "Vex", Level: 5, ClassID: "Ranger", SubclassID: "Hunter",
			SpeciesID: "Elf", SubspeciesID: "Wood Elf", BackgroundID: "Outlander",
			PlayerID: PlayerLaura, CampaignID: CampaignRealms,
			AbilityScores: entities.AbilityScores{Strength: 10, Dexterity: 18, Constitution: 12, Intelligence: 11, Wisdom: 14, Charisma: 13},
		},
		{
			ID: "Zephyr", Level: 5, ClassID: "Wizard", SubclassID: "School of Evocation",
			SpeciesID: "Elf", SubspeciesID: "High Elf", BackgroundID: "Sage",
			PlayerID: PlayerLaura, CampaignID: CampaignRavnica,
			AbilityScores: entities.AbilityScores{Strength: 8, Dexterity: 14, Constitution: 13, Intelligence: 18, Wisdom: 12, Charisma: 10},
		},
		{
			ID: "Anvil", Level: 9, ClassID: "Fighter", SubclassID: "Battle Master",
			SpeciesID: "Dwarf", SubspeciesID: "Mountain Dwarf", BackgroundID: "Soldier",
			PlayerID: PlayerLiam, CampaignID: CampaignRavnica,
			AbilityScores: entities.AbilityScores{Strength: 18, Dexterity: 10, Constitution: 16, Intelligence: 8, Wisdom: 12, Charisma: 9},
		},
	}
}

// SeedCampaignData inserts TestPlayers, TestCampaigns and TestCharacters
// directly through SQL so repository tests don't depend on each other.
func SeedCampaignData(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	for _, p := range TestPlayers() {
		_, err := db.ExecContext(ctx,
			"INSERT INTO player (player_id, fname, lname, pref_contact, contact_info, time_zone) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, p.FirstName, nullable(p.LastName), nullable(p.PreferredContact), p.ContactInfo, nullable(p.TimeZone))
		require.NoError(t, err, "insert player %d", p.ID)
	}

	for _, c := range TestCampaigns() {
		_, err := db.ExecContext(ctx,
			"INSERT INTO game (game_id, setting, synopsis, meeting_time, max_players) VALUES (?, ?, ?, NULL, ?)",
			c.ID, c.Setting, nullable(c.Synopsis), c.MaxPlayers)
		require.NoError(t, err, "insert campaign %s", c.ID)
	}

	for _, c := range TestCharacters() {
		InsertCharacter(t, db, c)
	}
}

// InsertCharacter inserts one character row
func InsertCharacter(t *testing.T, db *sql.DB, c *entities.Character) {
	t.Helper()

	a := c.AbilityScores
	_, err := db.ExecContext(context.Background(), `
INSERT INTO characters (char_id, lvl, subclass_id, subspecies_id, bg_id, player_id, game_id,
                        s_str, s_dex, s_con, s_int, s_wis, s_cha)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Level, nullable(c.SubclassID), nullable(c.SubspeciesID), nullable(c.BackgroundID),
		c.PlayerID, c.CampaignID,
		a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma)
	require.NoError(t, err, "insert character %s", c.ID)
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
