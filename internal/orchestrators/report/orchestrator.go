package report

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	reportrepo "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
)

const reportFailed = "error generating report"

// Config holds the dependencies for the report orchestrator
type Config struct {
	ReportRepo  reportrepo.Repository
	ReportCache reportcache.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.ReportRepo == nil {
		vb.RequiredField("ReportRepo")
	}
	if c.ReportCache == nil {
		vb.RequiredField("ReportCache")
	}
	return vb.Build()
}

// Orchestrator implements the report Service
type Orchestrator struct {
	reportRepo  reportrepo.Repository
	reportCache reportcache.Repository
}

// New creates a new report orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		reportRepo:  cfg.ReportRepo,
		reportCache: cfg.ReportCache,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// ListReports returns every report name in display order
func (o *Orchestrator) ListReports(_ context.Context, input *ListReportsInput) (*ListReportsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	names := make([]entities.ReportName, len(entities.ReportNames))
	copy(names, entities.ReportNames)
	return &ListReportsOutput{Names: names}, nil
}

// RunReport dispatches to the typed report method for input.Name
func (o *Orchestrator) RunReport(ctx context.Context, input *RunReportInput) (*RunReportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Name.IsValid() {
		return nil, errors.InvalidArgumentf("unknown report: %s", input.Name).
			WithMeta("report", string(input.Name))
	}

	var (
		rows   any
		source Source
		err    error
	)
	in := &ReportInput{}

	switch input.Name {
	case entities.ReportCharactersByClassAndCampaign:
		var out *CharactersByClassAndCampaignOutput
		if out, err = o.CharactersByClassAndCampaign(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportClassesWithMostSubclasses:
		var out *ClassesWithMostSubclassesOutput
		if out, err = o.ClassesWithMostSubclasses(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportAboveAverageLevelBySpecies:
		var out *AboveAverageLevelBySpeciesOutput
		if out, err = o.AboveAverageLevelBySpecies(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportAllPlayersAndCharacters:
		var out *AllPlayersAndCharactersOutput
		if out, err = o.AllPlayersAndCharacters(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportPopularSettingsAndMilitary:
		var out *PopularSettingsAndMilitaryOutput
		if out, err = o.PopularSettingsAndMilitary(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportCharacterSpeciesAndSize:
		var out *CharacterSpeciesAndSizeOutput
		if out, err = o.CharacterSpeciesAndSize(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportPlayerCharacterCounts:
		var out *PlayerCharacterCountsOutput
		if out, err = o.PlayerCharacterCounts(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportCampaignParticipation:
		var out *CampaignParticipationOutput
		if out, err = o.CampaignParticipation(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportClassDistribution:
		var out *ClassDistributionOutput
		if out, err = o.ClassDistribution(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	case entities.ReportCharacterAbilityModifiers:
		var out *CharacterAbilityModifiersOutput
		if out, err = o.CharacterAbilityModifiers(ctx, in); err == nil {
			rows, source = out.Rows, out.Source
		}
	}
	if err != nil {
		return nil, err
	}

	return &RunReportOutput{Name: input.Name, Rows: rows, Source: source}, nil
}

// readThrough serves name from the cache when possible, otherwise runs query
// and caches the result. Cache failures are logged and skipped.
func readThrough[T any](
	ctx context.Context,
	o *Orchestrator,
	name entities.ReportName,
	query func(context.Context) ([]T, error),
) ([]T, Source, error) {
	rows, source, gen, hit := cached[T](ctx, o.reportCache, name)
	if hit {
		return rows, source, nil
	}

	rows, err := query(ctx)
	if err != nil {
		slog.ErrorContext(ctx, reportFailed, "report", name, "error", err)
		return nil, Source{}, errors.Wrap(err, reportFailed).WithMeta("report", string(name))
	}
	if gen < 0 {
		return rows, Source{}, nil
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		slog.WarnContext(ctx, "Failed to encode report for cache", "report", name, "error", err)
		return rows, Source{}, nil
	}
	put, err := o.reportCache.Put(ctx, reportcache.PutInput{Name: name, Rows: payload, Generation: gen})
	if err != nil {
		slog.WarnContext(ctx, "Failed to cache report", "report", name, "error", err)
	} else if !put.Stored {
		slog.DebugContext(ctx, "Report cache invalidated during query, not storing", "report", name)
	}

	return rows, Source{}, nil
}

// cached returns the cached rows on a hit. On a miss it returns the cache
// generation to refill against, or -1 when the cache could not be read.
func cached[T any](ctx context.Context, cache reportcache.Repository, name entities.ReportName) ([]T, Source, int64, bool) {
	hit, err := cache.Get(ctx, reportcache.GetInput{Name: name})
	if err != nil {
		slog.WarnContext(ctx, "Report cache unavailable", "report", name, "error", err)
		return nil, Source{}, -1, false
	}
	if !hit.Found {
		return nil, Source{}, hit.Generation, false
	}

	rows := make([]T, 0)
	if err := json.Unmarshal(hit.Rows, &rows); err != nil {
		slog.WarnContext(ctx, "Discarding unreadable cached report", "report", name, "error", err)
		return nil, Source{}, hit.Generation, false
	}

	slog.DebugContext(ctx, "Report served from cache", "report", name, "cached_at", hit.CachedAt)
	return rows, Source{Cached: true, CachedAt: hit.CachedAt}, hit.Generation, true
}
