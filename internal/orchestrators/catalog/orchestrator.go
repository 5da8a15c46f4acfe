package catalog

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-campaigns/internal/clients/external"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/repositories/lookup"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
)

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	LookupRepo     lookup.Repository
	ExternalClient external.Client
	ReportCache    reportcache.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.LookupRepo == nil {
		vb.RequiredField("LookupRepo")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.ReportCache == nil {
		vb.RequiredField("ReportCache")
	}
	return vb.Build()
}

// Orchestrator implements the catalog Service
type Orchestrator struct {
	lookupRepo     lookup.Repository
	externalClient external.Client
	reportCache    reportcache.Repository
}

// New creates a new catalog orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		lookupRepo:     cfg.LookupRepo,
		externalClient: cfg.ExternalClient,
		reportCache:    cfg.ReportCache,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

func (o *Orchestrator) ListClassIDs(ctx context.Context, input *ListClassIDsInput) (*ListIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return ids(ctx, "error loading classes")(o.lookupRepo.ListClassIDs(ctx, lookup.ListClassIDsInput{}))
}

func (o *Orchestrator) ListSubclassIDs(ctx context.Context, input *ListSubclassIDsInput) (*ListIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return ids(ctx, "error loading subclasses")(o.lookupRepo.ListSubclassIDs(ctx, lookup.ListSubclassIDsInput{}))
}

func (o *Orchestrator) ListSubclassIDsByClass(
	ctx context.Context,
	input *ListSubclassIDsByClassInput,
) (*ListIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("class_id", input.ClassID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return ids(ctx, "error loading subclasses")(o.lookupRepo.ListSubclassIDsByClass(ctx,
		lookup.ListSubclassIDsByClassInput{ClassID: input.ClassID}))
}

func (o *Orchestrator) ListSpeciesIDs(ctx context.Context, input *ListSpeciesIDsInput) (*ListIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return ids(ctx, "error loading species")(o.lookupRepo.ListSpeciesIDs(ctx, lookup.ListSpeciesIDsInput{}))
}

func (o *Orchestrator) ListSubspeciesIDs(ctx context.Context, input *ListSubspeciesIDsInput) (*ListIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return ids(ctx, "error loading subspecies")(o.lookupRepo.ListSubspeciesIDs(ctx, lookup.ListSubspeciesIDsInput{}))
}

func (o *Orchestrator) ListSubspeciesIDsBySpecies(
	ctx context.Context,
	input *ListSubspeciesIDsBySpeciesInput,
) (*ListIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("species_id", input.SpeciesID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return ids(ctx, "error loading subspecies")(o.lookupRepo.ListSubspeciesIDsBySpecies(ctx,
		lookup.ListSubspeciesIDsBySpeciesInput{SpeciesID: input.SpeciesID}))
}

func (o *Orchestrator) ListBackgroundIDs(ctx context.Context, input *ListBackgroundIDsInput) (*ListIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return ids(ctx, "error loading backgrounds")(o.lookupRepo.ListBackgroundIDs(ctx, lookup.ListBackgroundIDsInput{}))
}

func (o *Orchestrator) ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.lookupRepo.ListClasses(ctx, lookup.ListClassesInput{})
	if err != nil {
		slog.ErrorContext(ctx, "error loading classes", "error", err)
		return nil, errors.Wrap(err, "error loading classes")
	}

	return &ListClassesOutput{Classes: result.Classes}, nil
}

func (o *Orchestrator) ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.lookupRepo.ListSpecies(ctx, lookup.ListSpeciesInput{})
	if err != nil {
		slog.ErrorContext(ctx, "error loading species", "error", err)
		return nil, errors.Wrap(err, "error loading species")
	}

	return &ListSpeciesOutput{Species: result.Species}, nil
}

// ids adapts a lookup listing to the service output, logging and wrapping failures
func ids(ctx context.Context, message string) func(*lookup.ListIDsOutput, error) (*ListIDsOutput, error) {
	return func(result *lookup.ListIDsOutput, err error) (*ListIDsOutput, error) {
		if err != nil {
			slog.ErrorContext(ctx, message, "error", err)
			return nil, errors.Wrap(err, message)
		}
		return &ListIDsOutput{IDs: result.IDs}, nil
	}
}
