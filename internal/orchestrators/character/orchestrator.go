package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/logging"
	characterrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/character"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	ReportCache   reportcache.Repository

	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.ReportCache == nil {
		vb.RequiredField("ReportCache")
	}
	if c.DiceRoller == nil {
		c.DiceRoller = dice.DefaultRoller
	}
	return vb.Build()
}

// Orchestrator implements the character Service
type Orchestrator struct {
	characterRepo characterrepo.Repository
	reportCache   reportcache.Repository
	diceRoller    dice.Roller
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		reportCache:   cfg.ReportCache,
		diceRoller:    cfg.DiceRoller,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// ListCharacters returns every character ordered by name
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		slog.ErrorContext(ctx, "error loading characters", "error", err)
		return nil, errors.Wrap(err, "error loading characters")
	}

	return &ListCharactersOutput{Characters: result.Characters}, nil
}

// ListCharactersWithDetails returns every character with its owner's name
func (o *Orchestrator) ListCharactersWithDetails(
	ctx context.Context,
	input *ListCharactersWithDetailsInput,
) (*ListCharactersWithDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.characterRepo.ListWithDetails(ctx, characterrepo.ListWithDetailsInput{})
	if err != nil {
		slog.ErrorContext(ctx, "error loading character details", "error", err)
		return nil, errors.Wrap(err, "error loading character details")
	}

	return &ListCharactersWithDetailsOutput{Characters: result.Characters}, nil
}

// GetCharacter returns one character by name
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.CharacterID) == "" {
		return nil, errors.InvalidArgument("character name required")
	}

	result, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		slog.ErrorContext(ctx, "error loading character", "character_id", input.CharacterID, "error", err)
		return nil, errors.Wrap(err, "error loading character")
	}

	return &GetCharacterOutput{Character: result.Character}, nil
}

// CreateCharacter stores a new character
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	result, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: input.Character})
	if err != nil {
		slog.ErrorContext(ctx, "error creating character",
			"character_id", input.Character.ID,
			"player_id", input.Character.PlayerID,
			"campaign_id", input.Character.CampaignID,
			"error", err)
		return nil, errors.Wrap(err, "error creating character")
	}

	slog.InfoContext(ctx, "Character created", logging.Entity(input.Character), "summary", result.Character.String())
	o.invalidateReports(ctx)

	return &CreateCharacterOutput{Character: result.Character}, nil
}

// UpdateCharacter overwrites an existing character
func (o *Orchestrator) UpdateCharacter(
	ctx context.Context,
	input *UpdateCharacterInput,
) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	result, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: input.Character})
	if err != nil {
		slog.ErrorContext(ctx, "error updating character", "character_id", input.Character.ID, "error", err)
		return nil, errors.Wrap(err, "error updating character")
	}

	o.invalidateReports(ctx)

	return &UpdateCharacterOutput{Character: result.Character}, nil
}

// DeleteCharacter removes a character by name
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.CharacterID) == "" {
		return nil, errors.InvalidArgument("character name required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		slog.ErrorContext(ctx, "error deleting character", "character_id", input.CharacterID, "error", err)
		return nil, errors.Wrap(err, "error deleting character")
	}

	slog.InfoContext(ctx, "Character deleted", logging.Entity(&entities.Character{ID: input.CharacterID}))
	o.invalidateReports(ctx)

	return &DeleteCharacterOutput{}, nil
}

func validateCharacter(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}

	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(c.ID) == "" {
		vb.Field("id", "character name required")
	}
	if c.PlayerID <= 0 {
		vb.Field("player_id", "player required")
	}
	if strings.TrimSpace(c.CampaignID) == "" {
		vb.Field("campaign_id", "campaign required")
	}
	errors.ValidateRange("level", c.Level, entities.MinLevel, entities.MaxLevel, vb)

	for i, score := range c.AbilityScores.Slice() {
		errors.ValidateRange(entities.Abilities[i], score, entities.MinAbilityScore, entities.MaxAbilityScore, vb)
	}

	return vb.Build()
}

func (o *Orchestrator) invalidateReports(ctx context.Context) {
	if _, err := o.reportCache.InvalidateAll(ctx, reportcache.InvalidateAllInput{}); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate report cache", "error", err)
	}
}
