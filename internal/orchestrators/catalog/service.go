// Package catalog implements the reference catalog orchestrator: the lookup
// lists behind the character form and the SRD import.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog Service

import (
	"context"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
)

// Service defines the catalog operations exposed to handlers
type Service interface {
	ListClassIDs(ctx context.Context, input *ListClassIDsInput) (*ListIDsOutput, error)
	ListSubclassIDs(ctx context.Context, input *ListSubclassIDsInput) (*ListIDsOutput, error)
	ListSubclassIDsByClass(ctx context.Context, input *ListSubclassIDsByClassInput) (*ListIDsOutput, error)
	ListSpeciesIDs(ctx context.Context, input *ListSpeciesIDsInput) (*ListIDsOutput, error)
	ListSubspeciesIDs(ctx context.Context, input *ListSubspeciesIDsInput) (*ListIDsOutput, error)
	ListSubspeciesIDsBySpecies(ctx context.Context, input *ListSubspeciesIDsBySpeciesInput) (*ListIDsOutput, error)
	ListBackgroundIDs(ctx context.Context, input *ListBackgroundIDsInput) (*ListIDsOutput, error)

	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
	ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error)

	// ImportCatalog pulls classes, species and backgrounds from the SRD API
	// and upserts them. Existing rows are updated, never removed.
	ImportCatalog(ctx context.Context, input *ImportCatalogInput) (*ImportCatalogOutput, error)
}

// ListIDsOutput is shared by every ID listing
type ListIDsOutput struct {
	IDs []string
}

// ListClassIDsInput defines the request for listing class IDs
type ListClassIDsInput struct{}

// ListSubclassIDsInput defines the request for listing subclass IDs
type ListSubclassIDsInput struct{}

// ListSubclassIDsByClassInput defines the request for listing a class's subclasses
type ListSubclassIDsByClassInput struct {
	ClassID string
}

// ListSpeciesIDsInput defines the request for listing species IDs
type ListSpeciesIDsInput struct{}

// ListSubspeciesIDsInput defines the request for listing subspecies IDs
type ListSubspeciesIDsInput struct{}

// ListSubspeciesIDsBySpeciesInput defines the request for listing a species' subspecies
type ListSubspeciesIDsBySpeciesInput struct {
	SpeciesID string
}

// ListBackgroundIDsInput defines the request for listing backgrounds
type ListBackgroundIDsInput struct{}

// ListClassesInput defines the request for listing full classes
type ListClassesInput struct{}

// ListClassesOutput defines the response for listing full classes
type ListClassesOutput struct {
	Classes []*entities.DnDClass
}

// ListSpeciesInput defines the request for listing full species
type ListSpeciesInput struct{}

// ListSpeciesOutput defines the response for listing full species
type ListSpeciesOutput struct {
	Species []*entities.Species
}

// ImportCatalogInput defines the request for importing the SRD catalog
type ImportCatalogInput struct{}

// ImportCatalogOutput reports how many rows were upserted
type ImportCatalogOutput struct {
	Classes     int `json:"classes"`
	Species     int `json:"species"`
	Subspecies  int `json:"subspecies"`
	Backgrounds int `json:"backgrounds"`
}
