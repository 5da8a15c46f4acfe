package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-campaigns/internal/config"
	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	redisclient "github.com/KirkDiggler/rpg-campaigns/internal/redis"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
)

// cachedReport mirrors the stored cache entry closely enough to validate it
type cachedReport struct {
	Rows     json.RawMessage `json:"rows"`
	CachedAt time.Time       `json:"cached_at"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if !cfg.CacheEnabled() {
		log.Fatal("REDIS_ADDR is not set, there is no report cache to flush")
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	if err := redisclient.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", cfg.RedisAddr)

	if len(os.Args) > 1 && os.Args[1] == "--all" {
		flushAll(ctx, client)
		return
	}

	fmt.Println("Scanning for stale report cache entries...")

	iter := client.Scan(ctx, 0, reportcache.KeyPrefix+"*", 0).Iterator()

	var staleKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		name := entities.ReportName(strings.TrimPrefix(key, reportcache.KeyPrefix))
		if !name.IsValid() {
			fmt.Printf("✗ Unknown report %s\n", key)
			staleKeys = append(staleKeys, key)
			continue
		}

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var entry cachedReport
		if err := json.Unmarshal(data, &entry); err != nil || entry.CachedAt.IsZero() || !json.Valid(entry.Rows) {
			fmt.Printf("✗ Corrupted entry in %s\n", key)
			staleKeys = append(staleKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d stale entries\n", checkedCount, len(staleKeys))

	if len(staleKeys) == 0 {
		fmt.Println("No stale entries found!")
		return
	}

	fmt.Println("\nStale keys:")
	for _, key := range staleKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range staleKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// flushAll drops every cached report through the cache repository
func flushAll(ctx context.Context, client redisclient.Client) {
	cache, err := reportcache.NewRedis(&reportcache.RedisConfig{Client: client})
	if err != nil {
		log.Fatal("Failed to create report cache:", err)
	}

	output, err := cache.InvalidateAll(ctx, reportcache.InvalidateAllInput{})
	if err != nil {
		log.Fatal("Failed to flush report cache:", err)
	}
	fmt.Printf("Removed %d cached reports\n", output.Removed)
}
