package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report"
	characterrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/character"
	reportrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
	"github.com/KirkDiggler/rpg-campaigns/internal/testutils"
)

func TestReportsReadThroughRedis(t *testing.T) {
	ctx := context.Background()

	db := testutils.CreateTestDB(t)
	testutils.SeedCampaignData(t, db)
	client, mr := testutils.CreateTestRedisClient(t)

	repo, err := reportrepo.NewSQLite(&reportrepo.SQLiteConfig{DB: db})
	require.NoError(t, err)
	cache, err := reportcache.NewRedis(&reportcache.RedisConfig{Client: client})
	require.NoError(t, err)

	o, err := report.New(&report.Config{ReportRepo: repo, ReportCache: cache})
	require.NoError(t, err)

	first, err := o.PlayerCharacterCounts(ctx, &report.ReportInput{})
	require.NoError(t, err)
	assert.False(t, first.Source.Cached)
	require.Len(t, first.Rows, 4)
	assert.Equal(t, "Laura", first.Rows[0].FirstName)
	assert.Equal(t, 0, first.Rows[3].CharacterCount)
	assert.True(t, mr.Exists(reportcache.Key(entities.ReportPlayerCharacterCounts)))

	second, err := o.PlayerCharacterCounts(ctx, &report.ReportInput{})
	require.NoError(t, err)
	assert.True(t, second.Source.Cached)
	assert.Equal(t, first.Rows, second.Rows)

	mr.FastForward(reportcache.DefaultTTL + 1)

	third, err := o.PlayerCharacterCounts(ctx, &report.ReportInput{})
	require.NoError(t, err)
	assert.False(t, third.Source.Cached)
}

// writeDuringQuery runs a write after the report query has read its rows but
// before the orchestrator refills the cache
type writeDuringQuery struct {
	reportrepo.Repository
	write func(ctx context.Context)
}

func (w *writeDuringQuery) PlayerCharacterCounts(ctx context.Context) ([]entities.PlayerCharacterCountRow, error) {
	rows, err := w.Repository.PlayerCharacterCounts(ctx)
	if w.write != nil {
		w.write(ctx)
		w.write = nil
	}
	return rows, err
}

func countFor(rows []entities.PlayerCharacterCountRow, playerID int) int {
	for _, row := range rows {
		if row.PlayerID == playerID {
			return row.CharacterCount
		}
	}
	return -1
}

func TestReportNotRefilledAfterConcurrentWrite(t *testing.T) {
	ctx := context.Background()

	db := testutils.CreateTestDB(t)
	testutils.SeedCampaignData(t, db)
	client, _ := testutils.CreateTestRedisClient(t)

	cache, err := reportcache.NewRedis(&reportcache.RedisConfig{Client: client})
	require.NoError(t, err)

	charRepo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{DB: db})
	require.NoError(t, err)
	characters, err := character.New(&character.Config{CharacterRepo: charRepo, ReportCache: cache})
	require.NoError(t, err)

	sqliteRepo, err := reportrepo.NewSQLite(&reportrepo.SQLiteConfig{DB: db})
	require.NoError(t, err)
	repo := &writeDuringQuery{
		Repository: sqliteRepo,
		write: func(ctx context.Context) {
			_, err := characters.DeleteCharacter(ctx, &character.DeleteCharacterInput{CharacterID: "Bramble"})
			require.NoError(t, err)
		},
	}

	o, err := report.New(&report.Config{ReportRepo: repo, ReportCache: cache})
	require.NoError(t, err)

	// rows read before the delete are still returned to this caller
	first, err := o.PlayerCharacterCounts(ctx, &report.ReportInput{})
	require.NoError(t, err)
	assert.False(t, first.Source.Cached)
	assert.Equal(t, 2, countFor(first.Rows, testutils.PlayerSam))

	second, err := o.PlayerCharacterCounts(ctx, &report.ReportInput{})
	require.NoError(t, err)
	assert.False(t, second.Source.Cached)
	assert.Equal(t, 1, countFor(second.Rows, testutils.PlayerSam))

	third, err := o.PlayerCharacterCounts(ctx, &report.ReportInput{})
	require.NoError(t, err)
	assert.True(t, third.Source.Cached)
	assert.Equal(t, 1, countFor(third.Rows, testutils.PlayerSam))
}
