package entities

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	EntityTypePlayer    = "player"
	EntityTypeCampaign  = "campaign"
	EntityTypeCharacter = "character"
)

var (
	_ core.Entity = (*Player)(nil)
	_ core.Entity = (*Campaign)(nil)
	_ core.Entity = (*Character)(nil)
)

// GetID returns the player id as a string
func (p *Player) GetID() string {
	return strconv.Itoa(p.ID)
}

// GetType returns the entity type for rpg-toolkit
func (p *Player) GetType() string {
	return EntityTypePlayer
}

// GetID returns the campaign's game id
func (c *Campaign) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Campaign) GetType() string {
	return EntityTypeCampaign
}

// GetID returns the character name
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}
