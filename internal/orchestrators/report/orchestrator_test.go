package report_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report"
	reportmock "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report/mock"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
	reportcachemock "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockReportRepo  *reportmock.MockRepository
	mockReportCache *reportcachemock.MockRepository
	orchestrator    *report.Orchestrator
	ctx             context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockReportRepo = reportmock.NewMockRepository(s.ctrl)
	s.mockReportCache = reportcachemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := report.New(&report.Config{
		ReportRepo:  s.mockReportRepo,
		ReportCache: s.mockReportCache,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestListReports() {
	output, err := s.orchestrator.ListReports(s.ctx, &report.ListReportsInput{})
	s.Require().NoError(err)
	s.Len(output.Names, 10)
	s.Equal(entities.ReportCharactersByClassAndCampaign, output.Names[0])
	s.Equal(entities.ReportCharacterAbilityModifiers, output.Names[9])
}

func (s *OrchestratorTestSuite) TestCacheMissRunsQueryAndStores() {
	rows := []entities.ClassDistributionRow{
		{ClassID: "Fighter", CharacterCount: 2, Percentage: 40},
		{ClassID: "Druid", CharacterCount: 1, Percentage: 20},
	}

	s.mockReportCache.EXPECT().
		Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution}).
		Return(&reportcache.GetOutput{Found: false}, nil)
	s.mockReportRepo.EXPECT().
		ClassDistribution(s.ctx).
		Return(rows, nil)
	s.mockReportCache.EXPECT().
		Put(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in reportcache.PutInput) (*reportcache.PutOutput, error) {
			s.Equal(entities.ReportClassDistribution, in.Name)
			s.JSONEq(`[
				{"class_id":"Fighter","character_count":2,"percentage":40},
				{"class_id":"Druid","character_count":1,"percentage":20}
			]`, string(in.Rows))
			return &reportcache.PutOutput{}, nil
		})

	output, err := s.orchestrator.ClassDistribution(s.ctx, &report.ReportInput{})
	s.Require().NoError(err)
	s.Equal(rows, output.Rows)
	s.False(output.Source.Cached)
}

func (s *OrchestratorTestSuite) TestCacheHitSkipsQuery() {
	cachedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	payload, err := json.Marshal([]entities.PlayerCharacterCountRow{
		{PlayerID: 2, FirstName: "Laura", CharacterCount: 2},
	})
	s.Require().NoError(err)

	s.mockReportCache.EXPECT().
		Get(s.ctx, reportcache.GetInput{Name: entities.ReportPlayerCharacterCounts}).
		Return(&reportcache.GetOutput{Found: true, Rows: payload, CachedAt: cachedAt}, nil)
	// no repository call expected

	output, err := s.orchestrator.PlayerCharacterCounts(s.ctx, &report.ReportInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Rows, 1)
	s.Equal("Laura", output.Rows[0].FirstName)
	s.True(output.Source.Cached)
	s.Equal(cachedAt, output.Source.CachedAt)
}

func (s *OrchestratorTestSuite) TestCacheUnavailableStillRuns() {
	s.mockReportCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis unavailable"))
	s.mockReportRepo.EXPECT().
		CharacterSpeciesAndSize(s.ctx).
		Return([]entities.CharacterSpeciesSizeRow{{CharacterID: "Anvil", SpeciesID: "Dwarf", SpeciesSize: "Medium"}}, nil)
	// no Put without a generation to refill against

	output, err := s.orchestrator.CharacterSpeciesAndSize(s.ctx, &report.ReportInput{})
	s.Require().NoError(err)
	s.Len(output.Rows, 1)
}

func (s *OrchestratorTestSuite) TestRefillUsesGenerationFromGet() {
	s.mockReportCache.EXPECT().
		Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution}).
		Return(&reportcache.GetOutput{Found: false, Generation: 7}, nil)
	s.mockReportRepo.EXPECT().
		ClassDistribution(s.ctx).
		Return([]entities.ClassDistributionRow{}, nil)
	s.mockReportCache.EXPECT().
		Put(s.ctx, reportcache.PutInput{
			Name:       entities.ReportClassDistribution,
			Rows:       []byte(`[]`),
			Generation: 7,
		}).
		Return(&reportcache.PutOutput{Stored: false}, nil)

	output, err := s.orchestrator.ClassDistribution(s.ctx, &report.ReportInput{})
	s.Require().NoError(err)
	s.Empty(output.Rows)
	s.False(output.Source.Cached)
}

func (s *OrchestratorTestSuite) TestCacheWriteFailureStillReturnsRows() {
	s.mockReportCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&reportcache.GetOutput{}, nil)
	s.mockReportRepo.EXPECT().
		CharacterSpeciesAndSize(s.ctx).
		Return([]entities.CharacterSpeciesSizeRow{{CharacterID: "Anvil", SpeciesID: "Dwarf", SpeciesSize: "Medium"}}, nil)
	s.mockReportCache.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis unavailable"))

	output, err := s.orchestrator.CharacterSpeciesAndSize(s.ctx, &report.ReportInput{})
	s.Require().NoError(err)
	s.Len(output.Rows, 1)
}

func (s *OrchestratorTestSuite) TestCorruptCacheEntryIsAMiss() {
	s.mockReportCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&reportcache.GetOutput{Found: true, Rows: []byte(`{"not":"a list"}`)}, nil)
	s.mockReportRepo.EXPECT().
		CampaignParticipation(s.ctx).
		Return([]entities.CampaignParticipationRow{}, nil)
	s.mockReportCache.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(&reportcache.PutOutput{}, nil)

	output, err := s.orchestrator.CampaignParticipation(s.ctx, &report.ReportInput{})
	s.Require().NoError(err)
	s.NotNil(output.Rows)
	s.Empty(output.Rows)
}

func (s *OrchestratorTestSuite) TestQueryFailure() {
	s.mockReportCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&reportcache.GetOutput{}, nil)
	s.mockReportRepo.EXPECT().
		AboveAverageLevelBySpecies(s.ctx).
		Return(nil, errors.Internal("failed to run report"))

	_, err := s.orchestrator.AboveAverageLevelBySpecies(s.ctx, &report.ReportInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Equal("error generating report", errors.GetMessage(err))
	s.Equal(string(entities.ReportAboveAverageLevelBySpecies), errors.GetMeta(err)["report"])
}

func (s *OrchestratorTestSuite) TestRunReport() {
	s.Run("dispatches by name", func() {
		s.mockReportCache.EXPECT().
			Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassesWithMostSubclasses}).
			Return(&reportcache.GetOutput{}, nil)
		s.mockReportRepo.EXPECT().
			ClassesWithMostSubclasses(s.ctx).
			Return([]entities.ClassSubclassCountRow{{ClassID: "Rogue", SubclassCount: 2}}, nil)
		s.mockReportCache.EXPECT().
			Put(s.ctx, gomock.Any()).
			Return(&reportcache.PutOutput{}, nil)

		output, err := s.orchestrator.RunReport(s.ctx, &report.RunReportInput{
			Name: entities.ReportClassesWithMostSubclasses,
		})
		s.Require().NoError(err)
		s.Equal(entities.ReportClassesWithMostSubclasses, output.Name)
		s.Equal([]entities.ClassSubclassCountRow{{ClassID: "Rogue", SubclassCount: 2}}, output.Rows)
	})

	s.Run("unknown name", func() {
		_, err := s.orchestrator.RunReport(s.ctx, &report.RunReportInput{Name: "top-secret"})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "unknown report: top-secret")
	})

	s.Run("nil input", func() {
		_, err := s.orchestrator.RunReport(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
}
