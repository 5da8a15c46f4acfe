// Package player provides persistence for players
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/rpg-campaigns/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Repository defines the interface for player persistence
type Repository interface {
	// List returns every player ordered by first name
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves a player by ID
	// Returns errors.InvalidArgument for a zero ID
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create inserts a player
	// Returns errors.InvalidArgument for a nil player or missing required columns
	// Returns errors.AlreadyExists if a player with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update overwrites every column of an existing player
	// Returns errors.InvalidArgument for a nil player or zero ID
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a player
	// Returns errors.InvalidArgument for a zero ID
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.FailedPrecondition if characters still reference the player
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// NextID returns one past the highest player ID, or 1 for an empty table
	// Returns errors.Internal for storage failures
	NextID(ctx context.Context, input NextIDInput) (*NextIDOutput, error)
}

// ListInput defines the input for listing players
type ListInput struct{}

// ListOutput defines the output for listing players
type ListOutput struct {
	Players []*entities.Player
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID int
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.Player
}

// CreateInput defines the input for creating a player
type CreateInput struct {
	Player *entities.Player
}

// CreateOutput defines the output for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// UpdateInput defines the input for updating a player
type UpdateInput struct {
	Player *entities.Player
}

// UpdateOutput defines the output for updating a player
type UpdateOutput struct {
	Player *entities.Player
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID int
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}

// NextIDInput defines the input for allocating a player ID
type NextIDInput struct{}

// NextIDOutput defines the output for allocating a player ID
type NextIDOutput struct {
	ID int
}
