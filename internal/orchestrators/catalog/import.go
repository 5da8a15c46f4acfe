package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-campaigns/internal/clients/external"
	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/repositories/lookup"
	reportcache "github.com/KirkDiggler/rpg-campaigns/internal/repositories/report_cache"
)

const importFailed = "error importing catalog"

// ImportCatalog fetches the SRD and upserts it into the lookup tables.
// The import stops at the first failed upsert; rows written before it stay.
func (o *Orchestrator) ImportCatalog(ctx context.Context, input *ImportCatalogInput) (*ImportCatalogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	classes, err := o.externalClient.ListClasses(ctx)
	if err != nil {
		return nil, o.fetchError(ctx, err, "classes")
	}
	species, err := o.externalClient.ListSpecies(ctx)
	if err != nil {
		return nil, o.fetchError(ctx, err, "species")
	}
	backgrounds, err := o.externalClient.ListBackgrounds(ctx)
	if err != nil {
		return nil, o.fetchError(ctx, err, "backgrounds")
	}

	output := &ImportCatalogOutput{}

	for _, class := range classes {
		if class == nil || class.Name == "" {
			continue
		}
		if _, err := o.lookupRepo.UpsertClass(ctx, lookup.UpsertClassInput{Class: classFromSRD(class)}); err != nil {
			return nil, o.importError(ctx, err, "class", class.Name)
		}
		output.Classes++
	}

	for _, sp := range species {
		if sp == nil || sp.Name == "" {
			continue
		}
		if _, err := o.lookupRepo.UpsertSpecies(ctx, lookup.UpsertSpeciesInput{Species: speciesFromSRD(sp)}); err != nil {
			return nil, o.importError(ctx, err, "species", sp.Name)
		}
		output.Species++

		for _, sub := range sp.Subspecies {
			_, err := o.lookupRepo.UpsertSubspecies(ctx, lookup.UpsertSubspeciesInput{
				SubspeciesID: sub,
				SpeciesID:    sp.Name,
			})
			if err != nil {
				return nil, o.importError(ctx, err, "subspecies", sub)
			}
			output.Subspecies++
		}
	}

	for _, bg := range backgrounds {
		if _, err := o.lookupRepo.UpsertBackground(ctx, lookup.UpsertBackgroundInput{BackgroundID: bg}); err != nil {
			return nil, o.importError(ctx, err, "background", bg)
		}
		output.Backgrounds++
	}

	slog.InfoContext(ctx, "Catalog imported",
		"classes", output.Classes,
		"species", output.Species,
		"subspecies", output.Subspecies,
		"backgrounds", output.Backgrounds)

	if _, err := o.reportCache.InvalidateAll(ctx, reportcache.InvalidateAllInput{}); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate report cache", "error", err)
	}

	return output, nil
}

func (o *Orchestrator) importError(ctx context.Context, err error, attrs ...any) error {
	slog.ErrorContext(ctx, importFailed, append(attrs, "error", err)...)
	return errors.Wrap(err, importFailed)
}

// fetchError reports a failed SRD request. Client errors carry no code, so
// they become Unavailable; cancellation keeps its own code.
func (o *Orchestrator) fetchError(ctx context.Context, err error, stage string) error {
	slog.ErrorContext(ctx, importFailed, "stage", stage, "error", err)

	code := errors.GetCode(err)
	var coded *errors.Error
	if !errors.As(err, &coded) && code == errors.CodeInternal {
		code = errors.CodeUnavailable
	}
	return errors.WrapWithCode(err, code, importFailed)
}

// classFromSRD maps SRD class data onto a class row. The first two saving
// throws become the primary and secondary stats.
func classFromSRD(class *external.ClassData) *entities.DnDClass {
	out := &entities.DnDClass{
		ID:          class.Name,
		Summary:     classSummary(class),
		CastingStat: class.SpellcastingAbility,
	}
	if len(class.SavingThrows) > 0 {
		out.PrimaryStat = class.SavingThrows[0]
	}
	if len(class.SavingThrows) > 1 {
		out.SecondaryStat = class.SavingThrows[1]
	}
	return out
}

func classSummary(class *external.ClassData) string {
	summary := fmt.Sprintf("Hit die d%d.", class.HitDie)
	if len(class.SavingThrows) > 0 {
		summary += " Saving throws: " + strings.Join(class.SavingThrows, ", ") + "."
	}
	return summary
}

func speciesFromSRD(sp *external.SpeciesData) *entities.Species {
	out := &entities.Species{
		ID:   sp.Name,
		Size: sp.Size,
	}
	if sp.Speed > 0 {
		out.Summary = fmt.Sprintf("Base walking speed %d ft.", sp.Speed)
	}
	return out
}
