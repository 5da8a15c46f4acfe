package player

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/logging"
	characterrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/character"
	playerrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/player"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
)

// Config holds the dependencies for the player orchestrator
type Config struct {
	PlayerRepo    playerrepo.Repository
	CharacterRepo characterrepo.Repository
	ReportCache   reportcache.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.ReportCache == nil {
		vb.RequiredField("ReportCache")
	}
	return vb.Build()
}

// Orchestrator implements the player Service
type Orchestrator struct {
	playerRepo    playerrepo.Repository
	characterRepo characterrepo.Repository
	reportCache   reportcache.Repository
}

// New creates a new player orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		playerRepo:    cfg.PlayerRepo,
		characterRepo: cfg.CharacterRepo,
		reportCache:   cfg.ReportCache,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// ListPlayers returns every player ordered by first name
func (o *Orchestrator) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.playerRepo.List(ctx, playerrepo.ListInput{})
	if err != nil {
		return nil, o.fail(ctx, err, "error loading players")
	}

	return &ListPlayersOutput{Players: result.Players}, nil
}

// GetPlayer returns one player
func (o *Orchestrator) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, o.fail(ctx, err, "error loading player", "player_id", input.PlayerID)
	}

	return &GetPlayerOutput{Player: result.Player}, nil
}

// CreatePlayer stores a new player
func (o *Orchestrator) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayer(input.Player, false); err != nil {
		return nil, err
	}

	player := *input.Player
	if player.ID == 0 {
		next, err := o.playerRepo.NextID(ctx, playerrepo.NextIDInput{})
		if err != nil {
			return nil, o.fail(ctx, err, "error creating player")
		}
		player.ID = next.ID
	}

	result, err := o.playerRepo.Create(ctx, playerrepo.CreateInput{Player: &player})
	if err != nil {
		return nil, o.fail(ctx, err, "error creating player", "player_id", player.ID)
	}

	slog.InfoContext(ctx, "Player created", logging.Entity(&player), "name", player.FullName())
	o.invalidateReports(ctx)

	return &CreatePlayerOutput{Player: result.Player}, nil
}

// UpdatePlayer overwrites an existing player
func (o *Orchestrator) UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayer(input.Player, true); err != nil {
		return nil, err
	}

	result, err := o.playerRepo.Update(ctx, playerrepo.UpdateInput{Player: input.Player})
	if err != nil {
		return nil, o.fail(ctx, err, "error updating player", "player_id", input.Player.ID)
	}

	o.invalidateReports(ctx)

	return &UpdatePlayerOutput{Player: result.Player}, nil
}

// DeletePlayer removes a player that owns no characters
func (o *Orchestrator) DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	owned, err := o.characterRepo.ListByPlayer(ctx, characterrepo.ListByPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, o.fail(ctx, err, "error deleting player", "player_id", input.PlayerID)
	}
	if n := len(owned.Characters); n > 0 {
		return nil, errors.FailedPreconditionf("player owns %d character(s); delete them first", n).
			WithMeta("player_id", input.PlayerID)
	}

	if _, err := o.playerRepo.Delete(ctx, playerrepo.DeleteInput{ID: input.PlayerID}); err != nil {
		return nil, o.fail(ctx, err, "error deleting player", "player_id", input.PlayerID)
	}

	slog.InfoContext(ctx, "Player deleted", logging.Entity(&entities.Player{ID: input.PlayerID}))
	o.invalidateReports(ctx)

	return &DeletePlayerOutput{}, nil
}

// ListPlayerCharacters returns the characters a player owns
func (o *Orchestrator) ListPlayerCharacters(
	ctx context.Context,
	input *ListPlayerCharactersInput,
) (*ListPlayerCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.characterRepo.ListByPlayer(ctx, characterrepo.ListByPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, o.fail(ctx, err, "error loading characters", "player_id", input.PlayerID)
	}

	return &ListPlayerCharactersOutput{Characters: result.Characters}, nil
}

func validatePlayer(player *entities.Player, requireID bool) error {
	if player == nil {
		return errors.InvalidArgument("player is required")
	}

	vb := errors.NewValidationBuilder()
	if requireID {
		errors.ValidatePositive("id", player.ID, vb)
	} else if player.ID < 0 {
		vb.InvalidField("id", "must not be negative")
	}
	if strings.TrimSpace(player.FirstName) == "" {
		vb.Field("first_name", "player first name required")
	}
	if strings.TrimSpace(player.ContactInfo) == "" {
		vb.Field("contact_info", "contact info required")
	}
	return vb.Build()
}

func (o *Orchestrator) fail(ctx context.Context, err error, message string, attrs ...any) error {
	slog.ErrorContext(ctx, message, append(attrs, "error", err)...)
	return errors.Wrap(err, message)
}

func (o *Orchestrator) invalidateReports(ctx context.Context) {
	if _, err := o.reportCache.InvalidateAll(ctx, reportcache.InvalidateAllInput{}); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate report cache", "error", err)
	}
}
