// Package report runs the fixed analytical queries over the campaign database.
// Every method returns an empty, non-nil slice when nothing matches.
package report

//go:generate mockgen -destination=mock/mock_repository.go -package=reportmock github.com/KirkDiggler/rpg-campaigns/internal/repositories/report Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Repository defines one method per report. All return errors.Internal for
// storage failures.
type Repository interface {
	// CharactersByClassAndCampaign lists characters with a subclass, ordered by class then name
	CharactersByClassAndCampaign(ctx context.Context) ([]entities.CharacterClassCampaignRow, error)

	// ClassesWithMostSubclasses lists classes whose subclass count beats at
	// least one class's character count
	ClassesWithMostSubclasses(ctx context.Context) ([]entities.ClassSubclassCountRow, error)

	// AboveAverageLevelBySpecies lists characters above their species' mean level
	AboveAverageLevelBySpecies(ctx context.Context) ([]entities.AboveAverageLevelRow, error)

	// AllPlayersAndCharacters is a full outer join of players and characters
	AllPlayersAndCharacters(ctx context.Context) ([]entities.PlayerCharacterRow, error)

	// PopularSettingsAndMilitary unions popular-setting and Soldier characters
	PopularSettingsAndMilitary(ctx context.Context) ([]entities.SettingOrMilitaryRow, error)

	// CharacterSpeciesAndSize lists each character's species and its size
	CharacterSpeciesAndSize(ctx context.Context) ([]entities.CharacterSpeciesSizeRow, error)

	// PlayerCharacterCounts counts characters per player, including players with none
	PlayerCharacterCounts(ctx context.Context) ([]entities.PlayerCharacterCountRow, error)

	// CampaignParticipation counts distinct players per campaign
	CampaignParticipation(ctx context.Context) ([]entities.CampaignParticipationRow, error)

	// ClassDistribution reports each class's character count and percentage
	ClassDistribution(ctx context.Context) ([]entities.ClassDistributionRow, error)

	// CharacterAbilityModifiers lists floor modifiers for characters with
	// both a subclass and a subspecies
	CharacterAbilityModifiers(ctx context.Context) ([]entities.AbilityModifiersRow, error)
}
