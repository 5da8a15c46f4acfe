// Package reportcache stores serialized report rows so repeated report
// requests skip the database until the next write.
package reportcache

//go:generate mockgen -destination=mock/mock_repository.go -package=reportcachemock github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Repository defines the report cache
type Repository interface {
	// Get returns the cached rows for a report along with the current cache
	// generation. A miss is not an error.
	// Returns errors.InvalidArgument for an unknown report name
	// Returns errors.Unavailable when the cache cannot be reached
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores rows for a report with the configured TTL. The write is
	// skipped when the cache generation no longer matches input.Generation,
	// so rows computed before an InvalidateAll are never stored after it.
	// Returns errors.InvalidArgument for an unknown report name
	// Returns errors.Unavailable when the cache cannot be reached
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// InvalidateAll bumps the cache generation and drops every cached report
	// Returns errors.Unavailable when the cache cannot be reached
	InvalidateAll(ctx context.Context, input InvalidateAllInput) (*InvalidateAllOutput, error)
}

// GetInput defines the input for reading a cached report
type GetInput struct {
	Name entities.ReportName
}

// GetOutput defines the output for reading a cached report
type GetOutput struct {
	Found    bool
	Rows     []byte
	CachedAt time.Time

	// Generation is read before the entry. Pass it to Put when refilling.
	Generation int64
}

// PutInput defines the input for caching a report. Rows is JSON.
type PutInput struct {
	Name       entities.ReportName
	Rows       []byte
	Generation int64
}

// PutOutput defines the output for caching a report. Stored is false when
// an invalidation raced the write.
type PutOutput struct {
	Stored    bool
	ExpiresAt time.Time
}

// InvalidateAllInput defines the input for dropping every cached report
type InvalidateAllInput struct{}

// InvalidateAllOutput defines the output for dropping every cached report
type InvalidateAllOutput struct {
	Removed int
}
