// Package report implements the report orchestrator. Every report is read
// through the report cache.
package report

//go:generate mockgen -destination=mock/mock_service.go -package=reportmock github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Service defines the report operations exposed to handlers
type Service interface {
	ListReports(ctx context.Context, input *ListReportsInput) (*ListReportsOutput, error)

	// RunReport runs one report by name
	// Returns errors.InvalidArgument for an unknown name
	RunReport(ctx context.Context, input *RunReportInput) (*RunReportOutput, error)

	CharactersByClassAndCampaign(ctx context.Context, input *ReportInput) (*CharactersByClassAndCampaignOutput, error)
	ClassesWithMostSubclasses(ctx context.Context, input *ReportInput) (*ClassesWithMostSubclassesOutput, error)
	AboveAverageLevelBySpecies(ctx context.Context, input *ReportInput) (*AboveAverageLevelBySpeciesOutput, error)
	AllPlayersAndCharacters(ctx context.Context, input *ReportInput) (*AllPlayersAndCharactersOutput, error)
	PopularSettingsAndMilitary(ctx context.Context, input *ReportInput) (*PopularSettingsAndMilitaryOutput, error)
	CharacterSpeciesAndSize(ctx context.Context, input *ReportInput) (*CharacterSpeciesAndSizeOutput, error)
	PlayerCharacterCounts(ctx context.Context, input *ReportInput) (*PlayerCharacterCountsOutput, error)
	CampaignParticipation(ctx context.Context, input *ReportInput) (*CampaignParticipationOutput, error)
	ClassDistribution(ctx context.Context, input *ReportInput) (*ClassDistributionOutput, error)
	CharacterAbilityModifiers(ctx context.Context, input *ReportInput) (*CharacterAbilityModifiersOutput, error)
}

// ListReportsInput defines the request for listing report names
type ListReportsInput struct{}

// ListReportsOutput defines the response for listing report names
type ListReportsOutput struct {
	Names []entities.ReportName
}

// RunReportInput defines the request for running a report by name
type RunReportInput struct {
	Name entities.ReportName
}

// RunReportOutput carries the typed rows of the named report
type RunReportOutput struct {
	Name   entities.ReportName
	Rows   any
	Source Source
}

// ReportInput is shared by the typed report methods
type ReportInput struct{}

// Source tells where report rows came from
type Source struct {
	Cached   bool
	CachedAt time.Time
}

// CharactersByClassAndCampaignOutput holds report rows
type CharactersByClassAndCampaignOutput struct {
	Rows   []entities.CharacterClassCampaignRow
	Source Source
}

// ClassesWithMostSubclassesOutput holds report rows
type ClassesWithMostSubclassesOutput struct {
	Rows   []entities.ClassSubclassCountRow
	Source Source
}

// AboveAverageLevelBySpeciesOutput holds report rows
type AboveAverageLevelBySpeciesOutput struct {
	Rows   []entities.AboveAverageLevelRow
	Source Source
}

// AllPlayersAndCharactersOutput holds report rows
type AllPlayersAndCharactersOutput struct {
	Rows   []entities.PlayerCharacterRow
	Source Source
}

// PopularSettingsAndMilitaryOutput holds report rows
type PopularSettingsAndMilitaryOutput struct {
	Rows   []entities.SettingOrMilitaryRow
	Source Source
}

// CharacterSpeciesAndSizeOutput holds report rows
type CharacterSpeciesAndSizeOutput struct {
	Rows   []entities.CharacterSpeciesSizeRow
	Source Source
}

// PlayerCharacterCountsOutput holds report rows
type PlayerCharacterCountsOutput struct {
	Rows   []entities.PlayerCharacterCountRow
	Source Source
}

// CampaignParticipationOutput holds report rows
type CampaignParticipationOutput struct {
	Rows   []entities.CampaignParticipationRow
	Source Source
}

// ClassDistributionOutput holds report rows
type ClassDistributionOutput struct {
	Rows   []entities.ClassDistributionRow
	Source Source
}

// CharacterAbilityModifiersOutput holds report rows
type CharacterAbilityModifiersOutput struct {
	Rows   []entities.AbilityModifiersRow
	Source Source
}
