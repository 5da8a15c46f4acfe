package report

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
)

// CharactersByClassAndCampaign lists characters with a subclass by class, then name
func (o *Orchestrator) CharactersByClassAndCampaign(
	ctx context.Context,
	input *ReportInput,
) (*CharactersByClassAndCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportCharactersByClassAndCampaign,
		o.reportRepo.CharactersByClassAndCampaign)
	if err != nil {
		return nil, err
	}
	return &CharactersByClassAndCampaignOutput{Rows: rows, Source: source}, nil
}

// ClassesWithMostSubclasses lists classes with more subclasses than some class has characters
func (o *Orchestrator) ClassesWithMostSubclasses(
	ctx context.Context,
	input *ReportInput,
) (*ClassesWithMostSubclassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportClassesWithMostSubclasses,
		o.reportRepo.ClassesWithMostSubclasses)
	if err != nil {
		return nil, err
	}
	return &ClassesWithMostSubclassesOutput{Rows: rows, Source: source}, nil
}

// AboveAverageLevelBySpecies lists characters above their species' mean level
func (o *Orchestrator) AboveAverageLevelBySpecies(
	ctx context.Context,
	input *ReportInput,
) (*AboveAverageLevelBySpeciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportAboveAverageLevelBySpecies,
		o.reportRepo.AboveAverageLevelBySpecies)
	if err != nil {
		return nil, err
	}
	return &AboveAverageLevelBySpeciesOutput{Rows: rows, Source: source}, nil
}

// AllPlayersAndCharacters pairs every player with every character, unmatched rows included
func (o *Orchestrator) AllPlayersAndCharacters(
	ctx context.Context,
	input *ReportInput,
) (*AllPlayersAndCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportAllPlayersAndCharacters,
		o.reportRepo.AllPlayersAndCharacters)
	if err != nil {
		return nil, err
	}
	return &AllPlayersAndCharactersOutput{Rows: rows, Source: source}, nil
}

// PopularSettingsAndMilitary lists characters in popular settings together with Soldiers
func (o *Orchestrator) PopularSettingsAndMilitary(
	ctx context.Context,
	input *ReportInput,
) (*PopularSettingsAndMilitaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportPopularSettingsAndMilitary,
		o.reportRepo.PopularSettingsAndMilitary)
	if err != nil {
		return nil, err
	}
	return &PopularSettingsAndMilitaryOutput{Rows: rows, Source: source}, nil
}

// CharacterSpeciesAndSize lists each character's species and its size
func (o *Orchestrator) CharacterSpeciesAndSize(
	ctx context.Context,
	input *ReportInput,
) (*CharacterSpeciesAndSizeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportCharacterSpeciesAndSize,
		o.reportRepo.CharacterSpeciesAndSize)
	if err != nil {
		return nil, err
	}
	return &CharacterSpeciesAndSizeOutput{Rows: rows, Source: source}, nil
}

// PlayerCharacterCounts counts characters per player, zero counts included
func (o *Orchestrator) PlayerCharacterCounts(
	ctx context.Context,
	input *ReportInput,
) (*PlayerCharacterCountsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportPlayerCharacterCounts,
		o.reportRepo.PlayerCharacterCounts)
	if err != nil {
		return nil, err
	}
	return &PlayerCharacterCountsOutput{Rows: rows, Source: source}, nil
}

// CampaignParticipation counts distinct players per campaign
func (o *Orchestrator) CampaignParticipation(
	ctx context.Context,
	input *ReportInput,
) (*CampaignParticipationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportCampaignParticipation,
		o.reportRepo.CampaignParticipation)
	if err != nil {
		return nil, err
	}
	return &CampaignParticipationOutput{Rows: rows, Source: source}, nil
}

// ClassDistribution reports each class's share of all characters
func (o *Orchestrator) ClassDistribution(
	ctx context.Context,
	input *ReportInput,
) (*ClassDistributionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportClassDistribution,
		o.reportRepo.ClassDistribution)
	if err != nil {
		return nil, err
	}
	return &ClassDistributionOutput{Rows: rows, Source: source}, nil
}

// CharacterAbilityModifiers lists ability modifiers for fully specified characters
func (o *Orchestrator) CharacterAbilityModifiers(
	ctx context.Context,
	input *ReportInput,
) (*CharacterAbilityModifiersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	rows, source, err := readThrough(ctx, o, entities.ReportCharacterAbilityModifiers,
		o.reportRepo.CharacterAbilityModifiers)
	if err != nil {
		return nil, err
	}
	return &CharacterAbilityModifiersOutput{Rows: rows, Source: source}, nil
}
