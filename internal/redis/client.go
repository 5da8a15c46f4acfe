// Package redis wraps the go-redis client used by the report cache.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the connection pool. Zero values keep go-redis defaults.
type Options struct {
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
}

// NewClient creates a client for a single Redis instance. The endpoint is
// either host:port or a redis:// or rediss:// URL.
// Connections are lazy, call Ping to check reachability.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{Addr: endpoint}
	if strings.Contains(endpoint, "://") {
		parsed, err := redis.ParseURL(endpoint)
		if err != nil {
			return nil, fmt.Errorf("redis: parse url: %w", err)
		}
		redisOpts = parsed
	}

	redisOpts.PoolSize = opts.PoolSize
	redisOpts.MinIdleConns = opts.MinIdleConns
	redisOpts.MaxRetries = opts.MaxRetries
	if opts.DialTimeout > 0 {
		redisOpts.DialTimeout = opts.DialTimeout
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks that the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}
