package lookup

import (
	"context"
	"database/sql"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/storage/sqlite"
)

type sqliteRepository struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite lookup repository
type SQLiteConfig struct {
	DB *sql.DB
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a SQLite-backed lookup repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) ListClassIDs(ctx context.Context, _ ListClassIDsInput) (*ListIDsOutput, error) {
	return r.listIDs(ctx, "SELECT class_id FROM class ORDER BY class_id")
}

func (r *sqliteRepository) ListSubclassIDs(ctx context.Context, _ ListSubclassIDsInput) (*ListIDsOutput, error) {
	return r.listIDs(ctx, "SELECT subclass_id FROM subclass ORDER BY subclass_id")
}

func (r *sqliteRepository) ListSubclassIDsByClass(ctx context.Context, input ListSubclassIDsByClassInput) (*ListIDsOutput, error) {
	if input.ClassID == "" {
		return nil, errors.InvalidArgument("class ID cannot be empty")
	}
	return r.listIDs(ctx, "SELECT subclass_id FROM subclass WHERE class_id = ? ORDER BY subclass_id", input.ClassID)
}

func (r *sqliteRepository) ListSpeciesIDs(ctx context.Context, _ ListSpeciesIDsInput) (*ListIDsOutput, error) {
	return r.listIDs(ctx, "SELECT species_id FROM species ORDER BY species_id")
}

func (r *sqliteRepository) ListSubspeciesIDs(ctx context.Context, _ ListSubspeciesIDsInput) (*ListIDsOutput, error) {
	return r.listIDs(ctx, "SELECT subspecies_id FROM subspecies ORDER BY subspecies_id")
}

func (r *sqliteRepository) ListSubspeciesIDsBySpecies(ctx context.Context, input ListSubspeciesIDsBySpeciesInput) (*ListIDsOutput, error) {
	if input.SpeciesID == "" {
		return nil, errors.InvalidArgument("species ID cannot be empty")
	}
	return r.listIDs(ctx, "SELECT subspecies_id FROM subspecies WHERE species_id = ? ORDER BY subspecies_id", input.SpeciesID)
}

func (r *sqliteRepository) ListBackgroundIDs(ctx context.Context, _ ListBackgroundIDsInput) (*ListIDsOutput, error) {
	return r.listIDs(ctx, "SELECT bg_id FROM background ORDER BY bg_id")
}

func (r *sqliteRepository) ListClasses(ctx context.Context, _ ListClassesInput) (*ListClassesOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT class_id, COALESCE(class_summary, ''), COALESCE(casting_stat, ''),
       COALESCE(primary_stat, ''), COALESCE(secondary_stat, '')
FROM class
ORDER BY class_id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query classes")
	}
	defer func() { _ = rows.Close() }()

	classes := make([]*entities.DnDClass, 0)
	for rows.Next() {
		var c entities.DnDClass
		if err := rows.Scan(&c.ID, &c.Summary, &c.CastingStat, &c.PrimaryStat, &c.SecondaryStat); err != nil {
			return nil, errors.Wrap(err, "failed to scan class")
		}
		classes = append(classes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read classes")
	}

	return &ListClassesOutput{Classes: classes}, nil
}

func (r *sqliteRepository) ListSpecies(ctx context.Context, _ ListSpeciesInput) (*ListSpeciesOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT species_id, species_size, COALESCE(species_summary, '')
FROM species
ORDER BY species_id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query species")
	}
	defer func() { _ = rows.Close() }()

	species := make([]*entities.Species, 0)
	for rows.Next() {
		var s entities.Species
		if err := rows.Scan(&s.ID, &s.Size, &s.Summary); err != nil {
			return nil, errors.Wrap(err, "failed to scan species")
		}
		species = append(species, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read species")
	}

	return &ListSpeciesOutput{Species: species}, nil
}

func (r *sqliteRepository) UpsertClass(ctx context.Context, input UpsertClassInput) (*UpsertOutput, error) {
	if input.Class == nil || input.Class.ID == "" {
		return nil, errors.InvalidArgument("class ID cannot be empty")
	}

	c := input.Class
	_, err := r.db.ExecContext(ctx, `
INSERT INTO class (class_id, class_summary, casting_stat, primary_stat, secondary_stat)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (class_id) DO UPDATE SET
    class_summary = excluded.class_summary,
    casting_stat = excluded.casting_stat,
    primary_stat = excluded.primary_stat,
    secondary_stat = excluded.secondary_stat`,
		c.ID, sqlite.NullString(c.Summary), sqlite.NullString(c.CastingStat),
		sqlite.NullString(c.PrimaryStat), sqlite.NullString(c.SecondaryStat))
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to upsert class")
	}

	return &UpsertOutput{}, nil
}

func (r *sqliteRepository) UpsertSubclass(ctx context.Context, input UpsertSubclassInput) (*UpsertOutput, error) {
	if input.SubclassID == "" || input.ClassID == "" {
		return nil, errors.InvalidArgument("subclass and class IDs are required")
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO subclass (subclass_id, class_id) VALUES (?, ?)
ON CONFLICT (subclass_id) DO UPDATE SET class_id = excluded.class_id`,
		input.SubclassID, input.ClassID)
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to upsert subclass")
	}

	return &UpsertOutput{}, nil
}

func (r *sqliteRepository) UpsertSpecies(ctx context.Context, input UpsertSpeciesInput) (*UpsertOutput, error) {
	if input.Species == nil || input.Species.ID == "" {
		return nil, errors.InvalidArgument("species ID cannot be empty")
	}
	if input.Species.Size == "" {
		return nil, errors.InvalidArgument("species size cannot be empty")
	}

	s := input.Species
	_, err := r.db.ExecContext(ctx, `
INSERT INTO species (species_id, species_size, species_summary) VALUES (?, ?, ?)
ON CONFLICT (species_id) DO UPDATE SET
    species_size = excluded.species_size,
    species_summary = excluded.species_summary`,
		s.ID, s.Size, sqlite.NullString(s.Summary))
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to upsert species")
	}

	return &UpsertOutput{}, nil
}

func (r *sqliteRepository) UpsertSubspecies(ctx context.Context, input UpsertSubspeciesInput) (*UpsertOutput, error) {
	if input.SubspeciesID == "" || input.SpeciesID == "" {
		return nil, errors.InvalidArgument("subspecies and species IDs are required")
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO subspecies (subspecies_id, species_id) VALUES (?, ?)
ON CONFLICT (subspecies_id) DO UPDATE SET species_id = excluded.species_id`,
		input.SubspeciesID, input.SpeciesID)
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to upsert subspecies")
	}

	return &UpsertOutput{}, nil
}

func (r *sqliteRepository) UpsertBackground(ctx context.Context, input UpsertBackgroundInput) (*UpsertOutput, error) {
	if input.BackgroundID == "" {
		return nil, errors.InvalidArgument("background ID cannot be empty")
	}

	_, err := r.db.ExecContext(ctx, "INSERT OR IGNORE INTO background (bg_id) VALUES (?)", input.BackgroundID)
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to upsert background")
	}

	return &UpsertOutput{}, nil
}

func (r *sqliteRepository) listIDs(ctx context.Context, query string, args ...any) (*ListIDsOutput, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query ids")
	}
	defer func() { _ = rows.Close() }()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read ids")
	}

	return &ListIDsOutput{IDs: ids}, nil
}
