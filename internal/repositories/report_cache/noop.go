package reportcache

import "context"

type noopRepository struct{}

// NewNoop returns a cache that never hits. Used when no redis is configured.
func NewNoop() Repository {
	return noopRepository{}
}

func (noopRepository) Get(context.Context, GetInput) (*GetOutput, error) {
	return &GetOutput{}, nil
}

func (noopRepository) Put(context.Context, PutInput) (*PutOutput, error) {
	return &PutOutput{}, nil
}

func (noopRepository) InvalidateAll(context.Context, InvalidateAllInput) (*InvalidateAllOutput, error) {
	return &InvalidateAllOutput{}, nil
}
