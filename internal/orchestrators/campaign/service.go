// Package campaign implements the campaign orchestrator
package campaign

//go:generate mockgen -destination=mock/mock_service.go -package=campaignmock github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/campaign Service

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Service defines the campaign operations exposed to handlers
type Service interface {
	ListCampaigns(ctx context.Context, input *ListCampaignsInput) (*ListCampaignsOutput, error)
	GetCampaign(ctx context.Context, input *GetCampaignInput) (*GetCampaignOutput, error)
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*CreateCampaignOutput, error)
	UpdateCampaign(ctx context.Context, input *UpdateCampaignInput) (*UpdateCampaignOutput, error)

	// DeleteCampaign returns errors.FailedPrecondition while characters
	// still play in the campaign
	DeleteCampaign(ctx context.Context, input *DeleteCampaignInput) (*DeleteCampaignOutput, error)
}

// ListCampaignsInput defines the request for listing campaigns
type ListCampaignsInput struct{}

// ListCampaignsOutput defines the response for listing campaigns
type ListCampaignsOutput struct {
	Campaigns []*entities.Campaign
}

// GetCampaignInput defines the request for getting a campaign
type GetCampaignInput struct {
	CampaignID string
}

// GetCampaignOutput defines the response for getting a campaign
type GetCampaignOutput struct {
	Campaign *entities.Campaign
}

// CreateCampaignInput defines the request for creating a campaign
type CreateCampaignInput struct {
	Campaign *entities.Campaign
}

// CreateCampaignOutput defines the response for creating a campaign
type CreateCampaignOutput struct {
	Campaign *entities.Campaign
}

// UpdateCampaignInput defines the request for updating a campaign
type UpdateCampaignInput struct {
	Campaign *entities.Campaign
}

// UpdateCampaignOutput defines the response for updating a campaign
type UpdateCampaignOutput struct {
	Campaign *entities.Campaign
}

// DeleteCampaignInput defines the request for deleting a campaign
type DeleteCampaignInput struct {
	CampaignID string
}

// DeleteCampaignOutput defines the response for deleting a campaign
type DeleteCampaignOutput struct{}
