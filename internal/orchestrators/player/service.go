// Package player implements the player orchestrator
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/player Service

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Service defines the player operations exposed to handlers
type Service interface {
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// CreatePlayer assigns the next free ID when the player has none
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)
	UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error)

	// DeletePlayer refuses with errors.FailedPrecondition while the player
	// owns characters
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error)

	ListPlayerCharacters(ctx context.Context, input *ListPlayerCharactersInput) (*ListPlayerCharactersOutput, error)
}

// ListPlayersInput defines the request for listing players
type ListPlayersInput struct{}

// ListPlayersOutput defines the response for listing players
type ListPlayersOutput struct {
	Players []*entities.Player
}

// GetPlayerInput defines the request for getting a player
type GetPlayerInput struct {
	PlayerID int
}

// GetPlayerOutput defines the response for getting a player
type GetPlayerOutput struct {
	Player *entities.Player
}

// CreatePlayerInput defines the request for creating a player
type CreatePlayerInput struct {
	Player *entities.Player
}

// CreatePlayerOutput defines the response for creating a player
type CreatePlayerOutput struct {
	Player *entities.Player
}

// UpdatePlayerInput defines the request for updating a player
type UpdatePlayerInput struct {
	Player *entities.Player
}

// UpdatePlayerOutput defines the response for updating a player
type UpdatePlayerOutput struct {
	Player *entities.Player
}

// DeletePlayerInput defines the request for deleting a player
type DeletePlayerInput struct {
	PlayerID int
}

// DeletePlayerOutput defines the response for deleting a player
type DeletePlayerOutput struct{}

// ListPlayerCharactersInput defines the request for listing a player's characters
type ListPlayerCharactersInput struct {
	PlayerID int
}

// ListPlayerCharactersOutput defines the response for listing a player's characters
type ListPlayerCharactersOutput struct {
	Characters []*entities.Character
}
