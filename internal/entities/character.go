package entities

import "fmt"

// Character is a persona played by one player in one campaign.
// ID is the character's name. ClassID and SpeciesID are resolved from the
// subclass and subspecies tables when the character is read.
type Character struct {
	ID            string        `json:"id"`
	Level         int           `json:"level"`
	ClassID       string        `json:"class_id,omitempty"`
	SubclassID    string        `json:"subclass_id,omitempty"`
	SpeciesID     string        `json:"species_id,omitempty"`
	SubspeciesID  string        `json:"subspecies_id,omitempty"`
	BackgroundID  string        `json:"background_id,omitempty"`
	PlayerID      int           `json:"player_id"`
	CampaignID    string        `json:"campaign_id"`
	AbilityScores AbilityScores `json:"ability_scores"`
}

// FullClass returns the class id, with the subclass in parentheses when set
func (c *Character) FullClass() string {
	return withVariant(c.ClassID, c.SubclassID)
}

// FullSpecies returns the species id, with the subspecies in parentheses when set
func (c *Character) FullSpecies() string {
	return withVariant(c.SpeciesID, c.SubspeciesID)
}

func (c *Character) String() string {
	return fmt.Sprintf("%s (Level %d %s)", c.ID, c.Level, c.FullClass())
}

// CharacterDetails is a character joined with its owner's name
type CharacterDetails struct {
	Character
	PlayerFirstName string `json:"player_first_name,omitempty"`
	PlayerLastName  string `json:"player_last_name,omitempty"`
}

func withVariant(base, variant string) string {
	if variant == "" {
		return base
	}
	return base + " (" + variant + ")"
}
