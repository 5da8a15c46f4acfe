// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a builder for a valid level 1 character with
// average scores
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:           "Test Hero",
			Level:        1,
			SubclassID:   "Champion",
			SubspeciesID: "Standard Human",
			BackgroundID: "Soldier",
			PlayerID:     1,
			CampaignID:   "test-campaign",
			AbilityScores: entities.AbilityScores{
				Strength: 10, Dexterity: 10, Constitution: 10,
				Intelligence: 10, Wisdom: 10, Charisma: 10,
			},
		},
	}
}

// WithID sets the character name
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithPlayerID sets the owning player
func (b *CharacterBuilder) WithPlayerID(playerID int) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithCampaignID sets the campaign
func (b *CharacterBuilder) WithCampaignID(campaignID string) *CharacterBuilder {
	b.character.CampaignID = campaignID
	return b
}

// WithClass sets the class and subclass
func (b *CharacterBuilder) WithClass(classID, subclassID string) *CharacterBuilder {
	b.character.ClassID = classID
	b.character.SubclassID = subclassID
	return b
}

// WithSpecies sets the species and subspecies
func (b *CharacterBuilder) WithSpecies(speciesID, subspeciesID string) *CharacterBuilder {
	b.character.SpeciesID = speciesID
	b.character.SubspeciesID = subspeciesID
	return b
}

// WithBackground sets the background
func (b *CharacterBuilder) WithBackground(backgroundID string) *CharacterBuilder {
	b.character.BackgroundID = backgroundID
	return b
}

// WithAbilityScores sets all six scores
func (b *CharacterBuilder) WithAbilityScores(scores entities.AbilityScores) *CharacterBuilder {
	b.character.AbilityScores = scores
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() *entities.Character {
	c := *b.character
	return &c
}
