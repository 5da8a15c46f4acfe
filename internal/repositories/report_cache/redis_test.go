package reportcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/clock"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
	"github.com/KirkDiggler/rpg-campaigns/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  reportcache.Repository
	ctx   context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2026, time.May, 1, 18, 0, 0, 0, time.UTC))

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := reportcache.NewRedis(&reportcache.RedisConfig{
		Client: client,
		Clock:  s.clock,
		TTL:    time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := reportcache.NewRedis(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = reportcache.NewRedis(&reportcache.RedisConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMiss() {
	out, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution})
	s.Require().NoError(err)
	s.Assert().False(out.Found)
}

func (s *RedisRepositoryTestSuite) TestPutThenGet() {
	rows := []byte(`[{"class_id":"Fighter","character_count":2,"percentage":40}]`)

	put, err := s.repo.Put(s.ctx, reportcache.PutInput{Name: entities.ReportClassDistribution, Rows: rows})
	s.Require().NoError(err)
	s.Assert().True(put.Stored)
	s.Assert().Equal(s.clock.Now().Add(time.Minute), put.ExpiresAt)
	s.Assert().Equal(time.Minute, s.mr.TTL(reportcache.Key(entities.ReportClassDistribution)))

	out, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution})
	s.Require().NoError(err)
	s.Assert().True(out.Found)
	s.Assert().JSONEq(string(rows), string(out.Rows))
	s.Assert().True(s.clock.Now().Equal(out.CachedAt))
}

func (s *RedisRepositoryTestSuite) TestEntryExpires() {
	_, err := s.repo.Put(s.ctx, reportcache.PutInput{Name: entities.ReportCampaignParticipation, Rows: []byte(`[]`)})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	out, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportCampaignParticipation})
	s.Require().NoError(err)
	s.Assert().False(out.Found)
}

func (s *RedisRepositoryTestSuite) TestCorruptEntryIsMiss() {
	s.Require().NoError(s.mr.Set(reportcache.Key(entities.ReportClassDistribution), "not json"))

	out, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution})
	s.Require().NoError(err)
	s.Assert().False(out.Found)
}

func (s *RedisRepositoryTestSuite) TestUnknownReport() {
	_, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: "nope"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, reportcache.PutInput{Name: "nope", Rows: []byte(`[]`)})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPutRejectsInvalidJSON() {
	_, err := s.repo.Put(s.ctx, reportcache.PutInput{Name: entities.ReportClassDistribution, Rows: []byte(`{`)})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestInvalidateAll() {
	for _, name := range entities.ReportNames {
		_, err := s.repo.Put(s.ctx, reportcache.PutInput{Name: name, Rows: []byte(`[]`)})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.mr.Set("session:keep", "1"))

	out, err := s.repo.InvalidateAll(s.ctx, reportcache.InvalidateAllInput{})
	s.Require().NoError(err)
	s.Assert().Equal(len(entities.ReportNames), out.Removed)
	s.Assert().True(s.mr.Exists("session:keep"))

	for _, name := range entities.ReportNames {
		s.Assert().False(s.mr.Exists(reportcache.Key(name)))
	}
}

func (s *RedisRepositoryTestSuite) TestInvalidateAllBumpsGeneration() {
	before, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution})
	s.Require().NoError(err)
	s.Assert().Zero(before.Generation)

	_, err = s.repo.InvalidateAll(s.ctx, reportcache.InvalidateAllInput{})
	s.Require().NoError(err)
	_, err = s.repo.InvalidateAll(s.ctx, reportcache.InvalidateAllInput{})
	s.Require().NoError(err)

	after, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution})
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), after.Generation)
	s.Assert().True(s.mr.Exists(reportcache.GenerationKey))
}

func (s *RedisRepositoryTestSuite) TestPutAfterInvalidateIsDropped() {
	miss, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportPlayerCharacterCounts})
	s.Require().NoError(err)
	s.Require().False(miss.Found)

	// a write lands while the report query is still running
	_, err = s.repo.InvalidateAll(s.ctx, reportcache.InvalidateAllInput{})
	s.Require().NoError(err)

	put, err := s.repo.Put(s.ctx, reportcache.PutInput{
		Name:       entities.ReportPlayerCharacterCounts,
		Rows:       []byte(`[{"player_id":1,"first_name":"Sam","character_count":2}]`),
		Generation: miss.Generation,
	})
	s.Require().NoError(err)
	s.Assert().False(put.Stored)
	s.Assert().True(put.ExpiresAt.IsZero())
	s.Assert().False(s.mr.Exists(reportcache.Key(entities.ReportPlayerCharacterCounts)))

	fresh, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportPlayerCharacterCounts})
	s.Require().NoError(err)
	put, err = s.repo.Put(s.ctx, reportcache.PutInput{
		Name:       entities.ReportPlayerCharacterCounts,
		Rows:       []byte(`[{"player_id":1,"first_name":"Sam","character_count":1}]`),
		Generation: fresh.Generation,
	})
	s.Require().NoError(err)
	s.Assert().True(put.Stored)
	s.Assert().True(s.mr.Exists(reportcache.Key(entities.ReportPlayerCharacterCounts)))
}

func (s *RedisRepositoryTestSuite) TestUnavailable() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution})
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *RedisRepositoryTestSuite) TestNoop() {
	repo := reportcache.NewNoop()

	_, err := repo.Put(s.ctx, reportcache.PutInput{Name: entities.ReportClassDistribution, Rows: []byte(`[]`)})
	s.Require().NoError(err)

	out, err := repo.Get(s.ctx, reportcache.GetInput{Name: entities.ReportClassDistribution})
	s.Require().NoError(err)
	s.Assert().False(out.Found)

	inv, err := repo.InvalidateAll(s.ctx, reportcache.InvalidateAllInput{})
	s.Require().NoError(err)
	s.Assert().Zero(inv.Removed)
}
