// Package catalogsync re-imports the SRD catalog on a fixed interval
package catalogsync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog"
)

// JobName identifies the import job in the scheduler and in logs
const JobName = "catalog-sync"

// Config holds the dependencies for the sync job
type Config struct {
	CatalogService catalog.Service
	Interval       time.Duration

	// RunOnStart runs an import as soon as the scheduler starts
	RunOnStart bool
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.Interval <= 0 {
		vb.Field("Interval", "must be positive")
	}
	return vb.Build()
}

// Job runs ImportCatalog on a gocron duration schedule
type Job struct {
	catalogService catalog.Service
	interval       time.Duration
	runOnStart     bool

	mu        sync.Mutex
	scheduler gocron.Scheduler
	cancel    context.CancelFunc
}

// New creates a stopped job
func New(cfg *Config) (*Job, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Job{
		catalogService: cfg.CatalogService,
		interval:       cfg.Interval,
		runOnStart:     cfg.RunOnStart,
	}, nil
}

// Start schedules the import. Imports run with a context derived from ctx
// and are cancelled by Stop.
func (j *Job) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.scheduler != nil {
		return errors.FailedPrecondition("catalog sync already started")
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return errors.Wrap(err, "error creating scheduler")
	}

	runCtx, cancel := context.WithCancel(ctx)

	opts := []gocron.JobOption{
		gocron.WithName(JobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if j.runOnStart {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() {
			if err := j.RunOnce(runCtx); err != nil {
				slog.ErrorContext(runCtx, "Catalog sync failed", "job", JobName, "error", err)
			}
		}),
		opts...,
	)
	if err != nil {
		cancel()
		_ = scheduler.Shutdown()
		return errors.Wrap(err, "error scheduling catalog sync")
	}

	scheduler.Start()
	j.scheduler = scheduler
	j.cancel = cancel

	slog.InfoContext(ctx, "Catalog sync scheduled", "job", JobName, "interval", j.interval)
	return nil
}

// Stop cancels any running import and waits for the scheduler to exit
func (j *Job) Stop() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.scheduler == nil {
		return nil
	}

	j.cancel()
	err := j.scheduler.Shutdown()
	j.scheduler = nil
	j.cancel = nil
	if err != nil {
		return errors.Wrap(err, "error stopping catalog sync")
	}
	return nil
}

// RunOnce performs a single import
func (j *Job) RunOnce(ctx context.Context) error {
	start := time.Now()

	output, err := j.catalogService.ImportCatalog(ctx, &catalog.ImportCatalogInput{})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Catalog sync complete",
		"job", JobName,
		"classes", output.Classes,
		"species", output.Species,
		"subspecies", output.Subspecies,
		"backgrounds", output.Backgrounds,
		"duration", time.Since(start))
	return nil
}
