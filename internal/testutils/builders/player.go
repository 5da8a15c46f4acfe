package builders

import "github.com/KirkDiggler/rpg-campaigns/internal/entities"

// PlayerBuilder builds test Player instances
type PlayerBuilder struct {
	player *entities.Player
}

// NewPlayerBuilder creates a builder for a player with the required fields set
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{
		player: &entities.Player{
			FirstName:   "Test",
			ContactInfo: "test@example.com",
		},
	}
}

// WithID sets the player id
func (b *PlayerBuilder) WithID(id int) *PlayerBuilder {
	b.player.ID = id
	return b
}

// WithName sets first and last name
func (b *PlayerBuilder) WithName(first, last string) *PlayerBuilder {
	b.player.FirstName = first
	b.player.LastName = last
	return b
}

// WithContact sets the preferred contact channel and contact info
func (b *PlayerBuilder) WithContact(preferred, info string) *PlayerBuilder {
	b.player.PreferredContact = preferred
	b.player.ContactInfo = info
	return b
}

// Build returns the player
func (b *PlayerBuilder) Build() *entities.Player {
	p := *b.player
	return &p
}
