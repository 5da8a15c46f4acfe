// Package character implements the character orchestrator
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Service defines the character operations exposed to handlers
type Service interface {
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// ListCharactersWithDetails adds each owner's name
	ListCharactersWithDetails(
		ctx context.Context,
		input *ListCharactersWithDetailsInput,
	) (*ListCharactersWithDetailsOutput, error)

	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// RollAbilityScores rolls 4d6 drop lowest for each ability. Nothing is stored.
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// ListCharactersWithDetailsInput defines the request for listing characters with owners
type ListCharactersWithDetailsInput struct{}

// ListCharactersWithDetailsOutput defines the response for listing characters with owners
type ListCharactersWithDetailsOutput struct {
	Characters []*entities.CharacterDetails
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Character *entities.Character
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// UpdateCharacterInput defines the request for updating a character
type UpdateCharacterInput struct {
	Character *entities.Character
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	Character *entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// RollAbilityScoresInput defines the request for rolling ability scores
type RollAbilityScoresInput struct{}

// AbilityRoll is one 4d6 drop lowest roll
type AbilityRoll struct {
	Ability string `json:"ability"`
	Kept    []int  `json:"kept"`
	Dropped int    `json:"dropped"`
	Total   int    `json:"total"`
}

// RollAbilityScoresOutput defines the response for rolling ability scores.
// Rolls are in STR..CHA order.
type RollAbilityScoresOutput struct {
	Scores entities.AbilityScores
	Rolls  []*AbilityRoll
}
