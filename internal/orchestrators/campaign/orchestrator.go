package campaign

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/logging"
	campaignrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/campaign"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
)

// Config holds the dependencies for the campaign orchestrator
type Config struct {
	CampaignRepo campaignrepo.Repository
	ReportCache  reportcache.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CampaignRepo == nil {
		vb.RequiredField("CampaignRepo")
	}
	if c.ReportCache == nil {
		vb.RequiredField("ReportCache")
	}
	return vb.Build()
}

// Orchestrator implements the campaign Service
type Orchestrator struct {
	campaignRepo campaignrepo.Repository
	reportCache  reportcache.Repository
}

// New creates a new campaign orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		campaignRepo: cfg.CampaignRepo,
		reportCache:  cfg.ReportCache,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// ListCampaigns returns every campaign ordered by id
func (o *Orchestrator) ListCampaigns(ctx context.Context, input *ListCampaignsInput) (*ListCampaignsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.campaignRepo.List(ctx, campaignrepo.ListInput{})
	if err != nil {
		slog.ErrorContext(ctx, "error loading campaigns", "error", err)
		return nil, errors.Wrap(err, "error loading campaigns")
	}

	return &ListCampaignsOutput{Campaigns: result.Campaigns}, nil
}

// GetCampaign loads one campaign by id
func (o *Orchestrator) GetCampaign(ctx context.Context, input *GetCampaignInput) (*GetCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("campaign_id", input.CampaignID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.campaignRepo.Get(ctx, campaignrepo.GetInput{ID: input.CampaignID})
	if err != nil {
		slog.ErrorContext(ctx, "error loading campaign", "campaign_id", input.CampaignID, "error", err)
		return nil, errors.Wrap(err, "error loading campaign")
	}

	return &GetCampaignOutput{Campaign: result.Campaign}, nil
}

// CreateCampaign stores a new campaign and drops cached reports
func (o *Orchestrator) CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*CreateCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	result, err := o.campaignRepo.Create(ctx, campaignrepo.CreateInput{Campaign: input.Campaign})
	if err != nil {
		slog.ErrorContext(ctx, "error creating campaign", "campaign_id", input.Campaign.ID, "error", err)
		return nil, errors.Wrap(err, "error creating campaign")
	}

	slog.InfoContext(ctx, "Campaign created", logging.Entity(input.Campaign), "setting", input.Campaign.Setting)
	o.invalidateReports(ctx)

	return &CreateCampaignOutput{Campaign: result.Campaign}, nil
}

// UpdateCampaign overwrites an existing campaign
func (o *Orchestrator) UpdateCampaign(ctx context.Context, input *UpdateCampaignInput) (*UpdateCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	result, err := o.campaignRepo.Update(ctx, campaignrepo.UpdateInput{Campaign: input.Campaign})
	if err != nil {
		slog.ErrorContext(ctx, "error updating campaign", "campaign_id", input.Campaign.ID, "error", err)
		return nil, errors.Wrap(err, "error updating campaign")
	}

	o.invalidateReports(ctx)

	return &UpdateCampaignOutput{Campaign: result.Campaign}, nil
}

// DeleteCampaign removes a campaign that no character plays in
func (o *Orchestrator) DeleteCampaign(ctx context.Context, input *DeleteCampaignInput) (*DeleteCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("campaign_id", input.CampaignID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.campaignRepo.Delete(ctx, campaignrepo.DeleteInput{ID: input.CampaignID}); err != nil {
		slog.ErrorContext(ctx, "error deleting campaign", "campaign_id", input.CampaignID, "error", err)
		return nil, errors.Wrap(err, "error deleting campaign")
	}

	slog.InfoContext(ctx, "Campaign deleted", logging.Entity(&entities.Campaign{ID: input.CampaignID}))
	o.invalidateReports(ctx)

	return &DeleteCampaignOutput{}, nil
}

func validateCampaign(campaign *entities.Campaign) error {
	if campaign == nil {
		return errors.InvalidArgument("campaign is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", campaign.ID, vb)
	errors.ValidateRequired("setting", campaign.Setting, vb)
	if campaign.MaxPlayers < 1 {
		vb.Field("max_players", "must be at least 1")
	}
	return vb.Build()
}

func (o *Orchestrator) invalidateReports(ctx context.Context) {
	if _, err := o.reportCache.InvalidateAll(ctx, reportcache.InvalidateAllInput{}); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate report cache", "error", err)
	}
}
