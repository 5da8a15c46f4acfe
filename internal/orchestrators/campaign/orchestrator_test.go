package campaign_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/campaign"
	campaignrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/campaign"
	campaignmock "github.com/KirkDiggler/rpg-campaigns/internal/repositories/campaign/mock"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
	reportcachemock "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCampaignRepo *campaignmock.MockRepository
	mockReportCache  *reportcachemock.MockRepository
	orchestrator     *campaign.Orchestrator
	ctx              context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCampaignRepo = campaignmock.NewMockRepository(s.ctrl)
	s.mockReportCache = reportcachemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := campaign.New(&campaign.Config{
		CampaignRepo: s.mockCampaignRepo,
		ReportCache:  s.mockReportCache,
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

func (s *OrchestratorTestSuite) TestNewRequiresDependencies() {
	_, err := campaign.New(nil)
	s.Error(err)

	_, err = campaign.New(&campaign.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "CampaignRepo")
	s.Contains(err.Error(), "ReportCache")
}

func (s *OrchestratorTestSuite) TestCreateCampaign() {
	meets := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)
	c := &entities.Campaign{ID: "curse-of-strahd", Setting: "Ravenloft", MaxPlayers: 5, MeetingTime: &meets}

	s.mockCampaignRepo.EXPECT().
		Create(s.ctx, campaignrepo.CreateInput{Campaign: c}).
		Return(&campaignrepo.CreateOutput{Campaign: c}, nil)
	s.mockReportCache.EXPECT().
		InvalidateAll(s.ctx, reportcache.InvalidateAllInput{}).
		Return(&reportcache.InvalidateAllOutput{Removed: 3}, nil)

	output, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{Campaign: c})
	s.Require().NoError(err)
	s.Equal("Ravenloft", output.Campaign.Setting)
}

func (s *OrchestratorTestSuite) TestCreateCampaignValidation() {
	testCases := []struct {
		name     string
		campaign *entities.Campaign
		contains string
	}{
		{"nil campaign", nil, "campaign is required"},
		{"missing id", &entities.Campaign{Setting: "Eberron", MaxPlayers: 4}, "id: is required"},
		{"missing setting", &entities.Campaign{ID: "sharn", MaxPlayers: 4}, "setting: is required"},
		{"no seats", &entities.Campaign{ID: "sharn", Setting: "Eberron"}, "max_players: must be at least 1"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{Campaign: tc.campaign})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.contains)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateCampaignDuplicate() {
	s.mockCampaignRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("campaign sharn already exists"))

	_, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{
		Campaign: &entities.Campaign{ID: "sharn", Setting: "Eberron", MaxPlayers: 4},
	})
	s.True(errors.IsAlreadyExists(err))
	s.Equal("error creating campaign", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestDeleteCampaignInUse() {
	s.mockCampaignRepo.EXPECT().
		Delete(s.ctx, campaignrepo.DeleteInput{ID: "lost-mine"}).
		Return(nil, errors.FailedPrecondition("campaign lost-mine still has characters"))

	_, err := s.orchestrator.DeleteCampaign(s.ctx, &campaign.DeleteCampaignInput{CampaignID: "lost-mine"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDeleteCampaign() {
	s.mockCampaignRepo.EXPECT().
		Delete(s.ctx, campaignrepo.DeleteInput{ID: "empty-table"}).
		Return(&campaignrepo.DeleteOutput{}, nil)
	s.mockReportCache.EXPECT().
		InvalidateAll(s.ctx, gomock.Any()).
		Return(&reportcache.InvalidateAllOutput{}, nil)

	_, err := s.orchestrator.DeleteCampaign(s.ctx, &campaign.DeleteCampaignInput{CampaignID: "empty-table"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestDeleteCampaignBlankID() {
	_, err := s.orchestrator.DeleteCampaign(s.ctx, &campaign.DeleteCampaignInput{CampaignID: " "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListAndGetCampaign() {
	all := []*entities.Campaign{
		{ID: "guild-wars", Setting: "Ravnica", MaxPlayers: 4},
		{ID: "lost-mine", Setting: "Forgotten Realms", MaxPlayers: 5},
	}
	s.mockCampaignRepo.EXPECT().
		List(s.ctx, campaignrepo.ListInput{}).
		Return(&campaignrepo.ListOutput{Campaigns: all}, nil)
	s.mockCampaignRepo.EXPECT().
		Get(s.ctx, campaignrepo.GetInput{ID: "lost-mine"}).
		Return(&campaignrepo.GetOutput{Campaign: all[1]}, nil)
	s.mockCampaignRepo.EXPECT().
		Get(s.ctx, campaignrepo.GetInput{ID: "nope"}).
		Return(nil, errors.NotFound("campaign nope not found"))

	listed, err := s.orchestrator.ListCampaigns(s.ctx, &campaign.ListCampaignsInput{})
	s.Require().NoError(err)
	s.Len(listed.Campaigns, 2)

	got, err := s.orchestrator.GetCampaign(s.ctx, &campaign.GetCampaignInput{CampaignID: "lost-mine"})
	s.Require().NoError(err)
	s.Equal(5, got.Campaign.MaxPlayers)

	_, err = s.orchestrator.GetCampaign(s.ctx, &campaign.GetCampaignInput{CampaignID: "nope"})
	s.True(errors.IsNotFound(err))
	s.Equal("error loading campaign", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestNilInput() {
	_, err := s.orchestrator.ListCampaigns(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetCampaign(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.DeleteCampaign(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateCampaignNotFound() {
	s.mockCampaignRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("campaign ghost not found"))

	_, err := s.orchestrator.UpdateCampaign(s.ctx, &campaign.UpdateCampaignInput{
		Campaign: &entities.Campaign{ID: "ghost", Setting: "Shadowfell", MaxPlayers: 3},
	})
	s.True(errors.IsNotFound(err))
}
