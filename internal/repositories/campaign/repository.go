// Package campaign provides persistence for campaigns, stored in the game table
package campaign

//go:generate mockgen -destination=mock/mock_repository.go -package=campaignmock github.com/KirkDiggler/rpg-campaigns/internal/repositories/campaign Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Repository defines the interface for campaign persistence
type Repository interface {
	// List returns every campaign ordered by ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves a campaign by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the campaign doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create inserts a campaign
	// Returns errors.InvalidArgument for a nil campaign or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update overwrites an existing campaign
	// Returns errors.InvalidArgument for a nil campaign or empty ID
	// Returns errors.NotFound if the campaign doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a campaign
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the campaign doesn't exist
	// Returns errors.FailedPrecondition if characters still play in it
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// ListInput defines the input for listing campaigns
type ListInput struct{}

// ListOutput defines the output for listing campaigns
type ListOutput struct {
	Campaigns []*entities.Campaign
}

// GetInput defines the input for getting a campaign
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a campaign
type GetOutput struct {
	Campaign *entities.Campaign
}

// CreateInput defines the input for creating a campaign
type CreateInput struct {
	Campaign *entities.Campaign
}

// CreateOutput defines the output for creating a campaign
type CreateOutput struct {
	Campaign *entities.Campaign
}

// UpdateInput defines the input for updating a campaign
type UpdateInput struct {
	Campaign *entities.Campaign
}

// UpdateOutput defines the output for updating a campaign
type UpdateOutput struct {
	Campaign *entities.Campaign
}

// DeleteInput defines the input for deleting a campaign
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a campaign
type DeleteOutput struct{}
