package reportcache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-campaigns/internal/redis"
)

const (
	// KeyPrefix namespaces report entries
	KeyPrefix = "report:"

	// GenerationKey counts invalidations. It sits outside KeyPrefix so
	// InvalidateAll never deletes it.
	GenerationKey = "report-cache:generation"

	// DefaultTTL applies when the config leaves TTL unset
	DefaultTTL = 5 * time.Minute

	scanBatch = 100
)

type entry struct {
	Rows     json.RawMessage `json:"rows"`
	CachedAt time.Time       `json:"cached_at"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis report cache
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

// NewRedis creates a Redis-backed report cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

// Key returns the redis key for a report
func Key(name entities.ReportName) string {
	return KeyPrefix + string(name)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if !input.Name.IsValid() {
		return nil, errors.InvalidArgumentf("unknown report %q", input.Name)
	}

	gen, err := generation(ctx, r.client)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read report cache generation")
	}

	raw, err := r.client.Get(ctx, Key(input.Name)).Bytes()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return &GetOutput{Found: false, Generation: gen}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read report cache")
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		// a corrupt entry is treated as a miss and overwritten on the next Put
		return &GetOutput{Found: false, Generation: gen}, nil
	}

	return &GetOutput{Found: true, Rows: e.Rows, CachedAt: e.CachedAt, Generation: gen}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if !input.Name.IsValid() {
		return nil, errors.InvalidArgumentf("unknown report %q", input.Name)
	}
	if !json.Valid(input.Rows) {
		return nil, errors.InvalidArgument("rows must be valid JSON")
	}

	now := r.clock.Now()
	data, err := json.Marshal(entry{Rows: input.Rows, CachedAt: now})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal report cache entry")
	}

	stored := false
	err = r.client.Watch(ctx, func(tx *redisclient.Tx) error {
		current, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != input.Generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
			pipe.Set(ctx, Key(input.Name), data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, GenerationKey)
	if err != nil && !stderrors.Is(err, redisclient.TxFailedErr) {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write report cache")
	}

	if !stored {
		return &PutOutput{Stored: false}, nil
	}
	return &PutOutput{Stored: true, ExpiresAt: now.Add(r.ttl)}, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redisclient.StringCmd
}

func generation(ctx context.Context, g getter) (int64, error) {
	gen, err := g.Get(ctx, GenerationKey).Int64()
	if stderrors.Is(err, redisclient.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *redisRepository) InvalidateAll(ctx context.Context, _ InvalidateAllInput) (*InvalidateAllOutput, error) {
	// bump first so refills that started before this call are rejected
	if err := r.client.Incr(ctx, GenerationKey).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to bump report cache generation")
	}

	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, KeyPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan report cache")
		}
		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to clear report cache")
			}
			removed += int(n)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return &InvalidateAllOutput{Removed: removed}, nil
}
