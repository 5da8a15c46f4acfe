package catalog_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-campaigns/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-campaigns/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog"
	"github.com/KirkDiggler/rpg-campaigns/internal/repositories/lookup"
	lookupmock "github.com/KirkDiggler/rpg-campaigns/internal/repositories/lookup/mock"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
	reportcachemock "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockLookupRepo     *lookupmock.MockRepository
	mockExternalClient *externalmock.MockClient
	mockReportCache    *reportcachemock.MockRepository
	orchestrator       *catalog.Orchestrator
	ctx                context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLookupRepo = lookupmock.NewMockRepository(s.ctrl)
	s.mockExternalClient = externalmock.NewMockClient(s.ctrl)
	s.mockReportCache = reportcachemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := catalog.New(&catalog.Config{
		LookupRepo:     s.mockLookupRepo,
		ExternalClient: s.mockExternalClient,
		ReportCache:    s.mockReportCache,
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

func (s *OrchestratorTestSuite) TestListClassIDs() {
	s.mockLookupRepo.EXPECT().
		ListClassIDs(s.ctx, lookup.ListClassIDsInput{}).
		Return(&lookup.ListIDsOutput{IDs: []string{"Bard", "Fighter"}}, nil)

	output, err := s.orchestrator.ListClassIDs(s.ctx, &catalog.ListClassIDsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Bard", "Fighter"}, output.IDs)
}

func (s *OrchestratorTestSuite) TestListSubclassIDsByClass() {
	s.Run("filters by class", func() {
		s.mockLookupRepo.EXPECT().
			ListSubclassIDsByClass(s.ctx, lookup.ListSubclassIDsByClassInput{ClassID: "Fighter"}).
			Return(&lookup.ListIDsOutput{IDs: []string{"Battle Master", "Champion"}}, nil)

		output, err := s.orchestrator.ListSubclassIDsByClass(s.ctx, &catalog.ListSubclassIDsByClassInput{ClassID: "Fighter"})
		s.Require().NoError(err)
		s.Len(output.IDs, 2)
	})

	s.Run("requires a class", func() {
		_, err := s.orchestrator.ListSubclassIDsByClass(s.ctx, &catalog.ListSubclassIDsByClassInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestListSubspeciesIDsBySpecies() {
	s.mockLookupRepo.EXPECT().
		ListSubspeciesIDsBySpecies(s.ctx, lookup.ListSubspeciesIDsBySpeciesInput{SpeciesID: "Elf"}).
		Return(nil, errors.Internal("no such table: subspecies"))

	_, err := s.orchestrator.ListSubspeciesIDsBySpecies(s.ctx, &catalog.ListSubspeciesIDsBySpeciesInput{SpeciesID: "Elf"})
	s.Require().Error(err)
	s.Equal("error loading subspecies", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestListFullRecords() {
	s.mockLookupRepo.EXPECT().
		ListClasses(s.ctx, lookup.ListClassesInput{}).
		Return(&lookup.ListClassesOutput{Classes: []*entities.DnDClass{{ID: "Wizard", CastingStat: "INT"}}}, nil)
	s.mockLookupRepo.EXPECT().
		ListSpecies(s.ctx, lookup.ListSpeciesInput{}).
		Return(&lookup.ListSpeciesOutput{Species: []*entities.Species{{ID: "Gnome", Size: "Small"}}}, nil)

	classes, err := s.orchestrator.ListClasses(s.ctx, &catalog.ListClassesInput{})
	s.Require().NoError(err)
	s.True(classes.Classes[0].IsCaster())

	species, err := s.orchestrator.ListSpecies(s.ctx, &catalog.ListSpeciesInput{})
	s.Require().NoError(err)
	s.Equal("Gnome (Small)", species.Species[0].String())
}

func (s *OrchestratorTestSuite) TestImportCatalog() {
	s.mockExternalClient.EXPECT().ListClasses(s.ctx).Return([]*external.ClassData{
		{ID: "wizard", Name: "Wizard", HitDie: 6, SavingThrows: []string{"INT", "WIS"}, SpellcastingAbility: "INT"},
		{ID: "fighter", Name: "Fighter", HitDie: 10, SavingThrows: []string{"STR", "CON"}},
	}, nil)
	s.mockExternalClient.EXPECT().ListSpecies(s.ctx).Return([]*external.SpeciesData{
		{ID: "dwarf", Name: "Dwarf", Size: "Medium", Speed: 25, Subspecies: []string{"Hill Dwarf"}},
	}, nil)
	s.mockExternalClient.EXPECT().ListBackgrounds(s.ctx).Return([]string{"Acolyte"}, nil)

	s.mockLookupRepo.EXPECT().
		UpsertClass(s.ctx, lookup.UpsertClassInput{Class: &entities.DnDClass{
			ID:            "Wizard",
			Summary:       "Hit die d6. Saving throws: INT, WIS.",
			CastingStat:   "INT",
			PrimaryStat:   "INT",
			SecondaryStat: "WIS",
		}}).
		Return(&lookup.UpsertOutput{}, nil)
	s.mockLookupRepo.EXPECT().
		UpsertClass(s.ctx, lookup.UpsertClassInput{Class: &entities.DnDClass{
			ID:            "Fighter",
			Summary:       "Hit die d10. Saving throws: STR, CON.",
			PrimaryStat:   "STR",
			SecondaryStat: "CON",
		}}).
		Return(&lookup.UpsertOutput{}, nil)
	s.mockLookupRepo.EXPECT().
		UpsertSpecies(s.ctx, lookup.UpsertSpeciesInput{Species: &entities.Species{
			ID:      "Dwarf",
			Size:    "Medium",
			Summary: "Base walking speed 25 ft.",
		}}).
		Return(&lookup.UpsertOutput{}, nil)
	s.mockLookupRepo.EXPECT().
		UpsertSubspecies(s.ctx, lookup.UpsertSubspeciesInput{SubspeciesID: "Hill Dwarf", SpeciesID: "Dwarf"}).
		Return(&lookup.UpsertOutput{}, nil)
	s.mockLookupRepo.EXPECT().
		UpsertBackground(s.ctx, lookup.UpsertBackgroundInput{BackgroundID: "Acolyte"}).
		Return(&lookup.UpsertOutput{}, nil)
	s.mockReportCache.EXPECT().
		InvalidateAll(s.ctx, reportcache.InvalidateAllInput{}).
		Return(&reportcache.InvalidateAllOutput{}, nil)

	output, err := s.orchestrator.ImportCatalog(s.ctx, &catalog.ImportCatalogInput{})
	s.Require().NoError(err)
	s.Equal(&catalog.ImportCatalogOutput{Classes: 2, Species: 1, Subspecies: 1, Backgrounds: 1}, output)
}

func (s *OrchestratorTestSuite) TestImportCatalogAPIFailure() {
	s.mockExternalClient.EXPECT().
		ListClasses(s.ctx).
		Return(nil, errors.Unavailable("dnd5eapi.co unreachable"))

	_, err := s.orchestrator.ImportCatalog(s.ctx, &catalog.ImportCatalogInput{})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal("error importing catalog", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestImportCatalogClientErrorCodes() {
	s.Run("uncoded client error is unavailable", func() {
		s.mockExternalClient.EXPECT().ListClasses(s.ctx).Return([]*external.ClassData{}, nil)
		s.mockExternalClient.EXPECT().
			ListSpecies(s.ctx).
			Return(nil, fmt.Errorf("failed to list races: %w", io.ErrUnexpectedEOF))

		_, err := s.orchestrator.ImportCatalog(s.ctx, &catalog.ImportCatalogInput{})
		s.Require().Error(err)
		s.True(errors.IsUnavailable(err))
		s.ErrorIs(err, io.ErrUnexpectedEOF)
	})

	s.Run("cancellation keeps its code", func() {
		s.mockExternalClient.EXPECT().ListClasses(s.ctx).Return(nil, context.Canceled)

		_, err := s.orchestrator.ImportCatalog(s.ctx, &catalog.ImportCatalogInput{})
		s.Require().Error(err)
		s.Equal(errors.CodeCanceled, errors.GetCode(err))
	})
}

func (s *OrchestratorTestSuite) TestImportCatalogUpsertFailure() {
	s.mockExternalClient.EXPECT().ListClasses(s.ctx).Return([]*external.ClassData{{Name: "Bard", HitDie: 8}}, nil)
	s.mockExternalClient.EXPECT().ListSpecies(s.ctx).Return([]*external.SpeciesData{}, nil)
	s.mockExternalClient.EXPECT().ListBackgrounds(s.ctx).Return([]string{}, nil)
	s.mockLookupRepo.EXPECT().
		UpsertClass(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("database is locked"))
	// nothing written, so no invalidation

	_, err := s.orchestrator.ImportCatalog(s.ctx, &catalog.ImportCatalogInput{})
	s.True(errors.IsInternal(err))
}
