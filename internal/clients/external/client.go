// Package external is the location for the dnd5e-api client used by the
// catalog import
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-campaigns/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
)

// DefaultBaseURL is the public SRD API
const DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

// Client defines the interface for external API interactions
type Client interface {
	// ListClasses returns every SRD class with details loaded
	ListClasses(ctx context.Context) ([]*ClassData, error)

	// ListSpecies returns every SRD race with its subraces
	ListSpecies(ctx context.Context) ([]*SpeciesData, error)

	// ListBackgrounds returns SRD background names
	ListBackgrounds(ctx context.Context) ([]string, error)
}

// srdAPI is the part of dnd5e.Interface this package calls
type srdAPI interface {
	ListClasses() ([]*entities.ReferenceItem, error)
	GetClass(key string) (*entities.Class, error)
	ListRaces() ([]*entities.ReferenceItem, error)
	GetRace(key string) (*entities.Race, error)
	ListBackgrounds() ([]*entities.ReferenceItem, error)
}

type client struct {
	dnd5eClient srdAPI
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("external: config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) ListClasses(ctx context.Context) ([]*ClassData, error) {
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	slog.DebugContext(ctx, "Got class references", "count", len(refs))

	return loadAll(ctx, refs, func(key string) (*ClassData, error) {
		class, err := c.dnd5eClient.GetClass(key)
		if err != nil {
			return nil, fmt.Errorf("failed to get class %s: %w", key, err)
		}
		return convertClass(class), nil
	})
}

func (c *client) ListSpecies(ctx context.Context) ([]*SpeciesData, error) {
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list races: %w", err)
	}
	slog.DebugContext(ctx, "Got race references", "count", len(refs))

	return loadAll(ctx, refs, func(key string) (*SpeciesData, error) {
		race, err := c.dnd5eClient.GetRace(key)
		if err != nil {
			return nil, fmt.Errorf("failed to get race %s: %w", key, err)
		}
		return convertRace(race), nil
	})
}

func (c *client) ListBackgrounds(_ context.Context) ([]string, error) {
	refs, err := c.dnd5eClient.ListBackgrounds()
	if err != nil {
		return nil, fmt.Errorf("failed to list backgrounds: %w", err)
	}

	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != nil && ref.Name != "" {
			names = append(names, ref.Name)
		}
	}
	return names, nil
}

// loadAll fetches details for every reference concurrently, keeping the
// reference order. Nil or keyless references are skipped. The first failure
// is returned.
func loadAll[T any](ctx context.Context, all []*entities.ReferenceItem, get func(key string) (*T, error)) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	refs := make([]*entities.ReferenceItem, 0, len(all))
	for _, ref := range all {
		if ref != nil && ref.Key != "" {
			refs = append(refs, ref)
		}
	}

	results := make([]*T, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			item, err := get(key)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to load SRD details", "key", key, "error", err)
				errChan <- err
				return
			}
			results[idx] = item
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func convertClass(class *entities.Class) *ClassData {
	if class == nil {
		return nil
	}

	savingThrows := make([]string, 0, len(class.SavingThrows))
	for _, st := range class.SavingThrows {
		if st != nil {
			savingThrows = append(savingThrows, strings.ToUpper(st.Key))
		}
	}

	// the pinned dnd5e-api entities.Class exposes no spellcasting ability
	var casting string

	return &ClassData{
		ID:                  class.Key,
		Name:                class.Name,
		HitDie:              int(class.HitDie),
		SavingThrows:        savingThrows,
		SpellcastingAbility: casting,
	}
}

func convertRace(race *entities.Race) *SpeciesData {
	if race == nil {
		return nil
	}

	subspecies := make([]string, 0, len(race.SubRaces))
	for _, sub := range race.SubRaces {
		if sub != nil && sub.Name != "" {
			subspecies = append(subspecies, sub.Name)
		}
	}

	return &SpeciesData{
		ID:         race.Key,
		Name:       race.Name,
		Size:       race.Size,
		Speed:      int(race.Speed),
		Subspecies: subspecies,
	}
}
