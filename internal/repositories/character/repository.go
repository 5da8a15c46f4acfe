// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-campaigns/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Repository defines the interface for character persistence.
// Class and species are resolved from the subclass and subspecies on read.
type Repository interface {
	// List returns every character ordered by name
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListWithDetails returns every character with its player's name
	// Returns errors.Internal for storage failures
	ListWithDetails(ctx context.Context, input ListWithDetailsInput) (*ListWithDetailsOutput, error)

	// Get retrieves a character by name
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByPlayer retrieves all characters for a player
	// Returns errors.InvalidArgument for a zero player ID
	// Returns errors.Internal for storage failures
	ListByPlayer(ctx context.Context, input ListByPlayerInput) (*ListByPlayerOutput, error)

	// Create inserts a character
	// Returns errors.InvalidArgument for a nil character, empty ID, unknown
	// references or a level outside 1-20
	// Returns errors.AlreadyExists if a character with the same name exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update overwrites every stored column of an existing character
	// Returns errors.InvalidArgument for the same reasons as Create
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character by name
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*entities.Character
}

// ListWithDetailsInput defines the input for listing characters with player names
type ListWithDetailsInput struct{}

// ListWithDetailsOutput defines the output for listing characters with player names
type ListWithDetailsOutput struct {
	Characters []*entities.CharacterDetails
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// ListByPlayerInput defines the input for listing characters by player
type ListByPlayerInput struct {
	PlayerID int
}

// ListByPlayerOutput defines the output for listing characters by player
type ListByPlayerOutput struct {
	Characters []*entities.Character
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
