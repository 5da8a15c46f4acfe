// Package lookup provides read access to the reference taxonomy (classes,
// subclasses, species, subspecies and backgrounds) and the upserts used by
// the catalog import.
package lookup

//go:generate mockgen -destination=mock/mock_repository.go -package=lookupmock github.com/KirkDiggler/rpg-campaigns/internal/repositories/lookup Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Repository defines the interface for reference data. Every list is ordered
// by ID and every method returns errors.Internal for storage failures.
type Repository interface {
	ListClassIDs(ctx context.Context, input ListClassIDsInput) (*ListIDsOutput, error)
	ListSubclassIDs(ctx context.Context, input ListSubclassIDsInput) (*ListIDsOutput, error)

	// ListSubclassIDsByClass returns errors.InvalidArgument for an empty class ID
	ListSubclassIDsByClass(ctx context.Context, input ListSubclassIDsByClassInput) (*ListIDsOutput, error)

	ListSpeciesIDs(ctx context.Context, input ListSpeciesIDsInput) (*ListIDsOutput, error)
	ListSubspeciesIDs(ctx context.Context, input ListSubspeciesIDsInput) (*ListIDsOutput, error)

	// ListSubspeciesIDsBySpecies returns errors.InvalidArgument for an empty species ID
	ListSubspeciesIDsBySpecies(ctx context.Context, input ListSubspeciesIDsBySpeciesInput) (*ListIDsOutput, error)

	ListBackgroundIDs(ctx context.Context, input ListBackgroundIDsInput) (*ListIDsOutput, error)

	ListClasses(ctx context.Context, input ListClassesInput) (*ListClassesOutput, error)
	ListSpecies(ctx context.Context, input ListSpeciesInput) (*ListSpeciesOutput, error)

	// UpsertClass inserts a class or replaces its descriptive columns
	// Returns errors.InvalidArgument for a nil class or empty ID
	UpsertClass(ctx context.Context, input UpsertClassInput) (*UpsertOutput, error)

	// UpsertSubclass inserts a subclass or moves it to another class
	// Returns errors.InvalidArgument for empty IDs or an unknown class
	UpsertSubclass(ctx context.Context, input UpsertSubclassInput) (*UpsertOutput, error)

	// UpsertSpecies inserts a species or replaces its descriptive columns
	// Returns errors.InvalidArgument for a nil species, empty ID or empty size
	UpsertSpecies(ctx context.Context, input UpsertSpeciesInput) (*UpsertOutput, error)

	// UpsertSubspecies inserts a subspecies or moves it to another species
	// Returns errors.InvalidArgument for empty IDs or an unknown species
	UpsertSubspecies(ctx context.Context, input UpsertSubspeciesInput) (*UpsertOutput, error)

	// UpsertBackground inserts a background if missing
	// Returns errors.InvalidArgument for an empty ID
	UpsertBackground(ctx context.Context, input UpsertBackgroundInput) (*UpsertOutput, error)
}

// ListIDsOutput is shared by every ID listing
type ListIDsOutput struct {
	IDs []string
}

// ListClassIDsInput defines the input for listing class IDs
type ListClassIDsInput struct{}

// ListSubclassIDsInput defines the input for listing subclass IDs
type ListSubclassIDsInput struct{}

// ListSubclassIDsByClassInput defines the input for listing one class's subclasses
type ListSubclassIDsByClassInput struct {
	ClassID string
}

// ListSpeciesIDsInput defines the input for listing species IDs
type ListSpeciesIDsInput struct{}

// ListSubspeciesIDsInput defines the input for listing subspecies IDs
type ListSubspeciesIDsInput struct{}

// ListSubspeciesIDsBySpeciesInput defines the input for listing one species' subspecies
type ListSubspeciesIDsBySpeciesInput struct {
	SpeciesID string
}

// ListBackgroundIDsInput defines the input for listing background IDs
type ListBackgroundIDsInput struct{}

// ListClassesInput defines the input for listing full classes
type ListClassesInput struct{}

// ListClassesOutput defines the output for listing full classes
type ListClassesOutput struct {
	Classes []*entities.DnDClass
}

// ListSpeciesInput defines the input for listing full species
type ListSpeciesInput struct{}

// ListSpeciesOutput defines the output for listing full species
type ListSpeciesOutput struct {
	Species []*entities.Species
}

// UpsertClassInput defines the input for upserting a class
type UpsertClassInput struct {
	Class *entities.DnDClass
}

// UpsertSubclassInput defines the input for upserting a subclass
type UpsertSubclassInput struct {
	SubclassID string
	ClassID    string
}

// UpsertSpeciesInput defines the input for upserting a species
type UpsertSpeciesInput struct {
	Species *entities.Species
}

// UpsertSubspeciesInput defines the input for upserting a subspecies
type UpsertSubspeciesInput struct {
	SubspeciesID string
	SpeciesID    string
}

// UpsertBackgroundInput defines the input for upserting a background
type UpsertBackgroundInput struct {
	BackgroundID string
}

// UpsertOutput is shared by every upsert
type UpsertOutput struct{}
