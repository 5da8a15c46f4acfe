package campaign_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/repositories/campaign"
	"github.com/KirkDiggler/rpg-campaigns/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db   *sql.DB
	repo campaign.Repository
	ctx  context.Context
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.CreateTestDB(s.T())

	repo, err := campaign.NewSQLite(&campaign.SQLiteConfig{DB: s.db})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TestList() {
	s.Run("empty table", func() {
		out, err := s.repo.List(s.ctx, campaign.ListInput{})
		s.Require().NoError(err)
		s.Assert().NotNil(out.Campaigns)
		s.Assert().Empty(out.Campaigns)
	})

	s.Run("ordered by id", func() {
		testutils.SeedCampaignData(s.T(), s.db)

		out, err := s.repo.List(s.ctx, campaign.ListInput{})
		s.Require().NoError(err)

		ids := make([]string, len(out.Campaigns))
		for i, c := range out.Campaigns {
			ids[i] = c.ID
		}
		s.Assert().Equal([]string{"empty-table", "guild-wars", "lost-mine", "sharn-nights"}, ids)
	})
}

func (s *SQLiteRepositoryTestSuite) TestCreateAndGet() {
	meeting := time.Date(2026, time.March, 14, 19, 30, 0, 0, time.UTC)
	c := &entities.Campaign{
		ID:          "curse-of-strahd",
		Setting:     "Ravenloft",
		Synopsis:    "Mists close around Barovia",
		MeetingTime: &meeting,
		MaxPlayers:  5,
	}

	s.Run("round trips meeting time", func() {
		_, err := s.repo.Create(s.ctx, campaign.CreateInput{Campaign: c})
		s.Require().NoError(err)

		out, err := s.repo.Get(s.ctx, campaign.GetInput{ID: c.ID})
		s.Require().NoError(err)
		s.Require().NotNil(out.Campaign.MeetingTime)
		s.Assert().True(meeting.Equal(*out.Campaign.MeetingTime))
		s.Assert().Equal("curse-of-strahd (Ravenloft)", out.Campaign.String())
	})

	s.Run("duplicate id", func() {
		_, err := s.repo.Create(s.ctx, campaign.CreateInput{Campaign: c})
		s.Assert().True(errors.IsAlreadyExists(err))
	})

	s.Run("missing setting", func() {
		_, err := s.repo.Create(s.ctx, campaign.CreateInput{Campaign: &entities.Campaign{ID: "no-setting"}})
		s.Assert().Error(err)
	})

	s.Run("empty id", func() {
		_, err := s.repo.Create(s.ctx, campaign.CreateInput{Campaign: &entities.Campaign{Setting: "Eberron"}})
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("missing campaign", func() {
		_, err := s.repo.Get(s.ctx, campaign.GetInput{ID: "nope"})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestUpdate() {
	testutils.SeedCampaignData(s.T(), s.db)

	s.Run("clears meeting time and synopsis", func() {
		c := &entities.Campaign{ID: testutils.CampaignRealms, Setting: "Forgotten Realms", MaxPlayers: 6}
		_, err := s.repo.Update(s.ctx, campaign.UpdateInput{Campaign: c})
		s.Require().NoError(err)

		out, err := s.repo.Get(s.ctx, campaign.GetInput{ID: testutils.CampaignRealms})
		s.Require().NoError(err)
		s.Assert().Equal(c, out.Campaign)
	})

	s.Run("missing campaign", func() {
		_, err := s.repo.Update(s.ctx, campaign.UpdateInput{Campaign: &entities.Campaign{ID: "nope", Setting: "x"}})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestDelete() {
	testutils.SeedCampaignData(s.T(), s.db)

	s.Run("campaign without characters", func() {
		_, err := s.repo.Delete(s.ctx, campaign.DeleteInput{ID: testutils.CampaignNoPlayer})
		s.Require().NoError(err)
	})

	s.Run("campaign with characters", func() {
		_, err := s.repo.Delete(s.ctx, campaign.DeleteInput{ID: testutils.CampaignRealms})
		s.Assert().True(errors.IsFailedPrecondition(err))
	})

	s.Run("missing campaign", func() {
		_, err := s.repo.Delete(s.ctx, campaign.DeleteInput{ID: testutils.CampaignNoPlayer})
		s.Assert().True(errors.IsNotFound(err))
	})
}
