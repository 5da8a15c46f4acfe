package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-campaigns/internal/clients/external"
	"github.com/KirkDiggler/rpg-campaigns/internal/config"
	campaignorch "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/campaign"
	catalogorch "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog"
	characterorch "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/character"
	playerorch "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/player"
	reportorch "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-campaigns/internal/redis"
	campaignrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/campaign"
	characterrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/character"
	"github.com/KirkDiggler/rpg-campaigns/internal/repositories/lookup"
	playerrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/player"
	reportrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
	"github.com/KirkDiggler/rpg-campaigns/internal/storage/sqlite"
)

// services holds every orchestrator plus the handles that must be closed
type services struct {
	players    *playerorch.Orchestrator
	campaigns  *campaignorch.Orchestrator
	characters *characterorch.Orchestrator
	catalog    *catalogorch.Orchestrator
	reports    *reportorch.Orchestrator

	db    *sql.DB
	redis redisclient.Client
}

func (s *services) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			slog.Warn("Failed to close database", "error", err)
		}
	}
}

// newServices opens storage and builds the orchestrators. The caller owns
// the returned services and must Close them.
func newServices(ctx context.Context, cfg *config.Config) (svc *services, err error) {
	svc = &services{}
	defer func() {
		if err != nil {
			svc.Close()
			svc = nil
		}
	}()

	svc.db, err = sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	cache, err := newReportCache(ctx, cfg, svc)
	if err != nil {
		return nil, err
	}

	playerRepo, err := playerrepo.NewSQLite(&playerrepo.SQLiteConfig{DB: svc.db})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}
	campaignRepo, err := campaignrepo.NewSQLite(&campaignrepo.SQLiteConfig{DB: svc.db})
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign repository: %w", err)
	}
	characterRepo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{DB: svc.db})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	lookupRepo, err := lookup.NewSQLite(&lookup.SQLiteConfig{DB: svc.db})
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup repository: %w", err)
	}
	reportRepo, err := reportrepo.NewSQLite(&reportrepo.SQLiteConfig{DB: svc.db})
	if err != nil {
		return nil, fmt.Errorf("failed to create report repository: %w", err)
	}

	externalClient, err := external.New(&external.Config{
		BaseURL:     cfg.DND5eBaseURL,
		HTTPTimeout: cfg.DND5eHTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create external client: %w", err)
	}

	svc.players, err = playerorch.New(&playerorch.Config{
		PlayerRepo:    playerRepo,
		CharacterRepo: characterRepo,
		ReportCache:   cache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player orchestrator: %w", err)
	}

	svc.campaigns, err = campaignorch.New(&campaignorch.Config{
		CampaignRepo: campaignRepo,
		ReportCache:  cache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign orchestrator: %w", err)
	}

	svc.characters, err = characterorch.New(&characterorch.Config{
		CharacterRepo: characterRepo,
		ReportCache:   cache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	svc.catalog, err = catalogorch.New(&catalogorch.Config{
		LookupRepo:     lookupRepo,
		ExternalClient: externalClient,
		ReportCache:    cache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog orchestrator: %w", err)
	}

	svc.reports, err = reportorch.New(&reportorch.Config{
		ReportRepo:  reportRepo,
		ReportCache: cache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report orchestrator: %w", err)
	}

	return svc, nil
}

// newReportCache connects to redis when configured. Without REDIS_ADDR the
// reports are computed on every call.
func newReportCache(ctx context.Context, cfg *config.Config, svc *services) (reportcache.Repository, error) {
	if !cfg.CacheEnabled() {
		slog.InfoContext(ctx, "REDIS_ADDR not set, report cache disabled")
		return reportcache.NewNoop(), nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	svc.redis = client

	if err := redisclient.Ping(ctx, client); err != nil {
		// the cache degrades to misses, so a down redis is not fatal
		slog.WarnContext(ctx, "Redis is not reachable, reports will be computed", "addr", cfg.RedisAddr, "error", err)
	}

	cache, err := reportcache.NewRedis(&reportcache.RedisConfig{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.ReportCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report cache: %w", err)
	}

	slog.InfoContext(ctx, "Report cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.ReportCacheTTL)
	return cache, nil
}
