package character

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/storage/sqlite"
)

const (
	characterColumns = `
    c.char_id, c.lvl,
    COALESCE(sc.class_id, ''), COALESCE(c.subclass_id, ''),
    COALESCE(ss.species_id, ''), COALESCE(c.subspecies_id, ''),
    COALESCE(c.bg_id, ''), c.player_id, c.game_id,
    c.s_str, c.s_dex, c.s_con, c.s_int, c.s_wis, c.s_cha`

	characterJoins = `
FROM characters c
LEFT JOIN subclass sc ON sc.subclass_id = c.subclass_id
LEFT JOIN subspecies ss ON ss.subspecies_id = c.subspecies_id`

	selectCharacters = "SELECT" + characterColumns + characterJoins

	selectCharacterDetails = "SELECT" + characterColumns + `,
    COALESCE(p.fname, ''), COALESCE(p.lname, '')` + characterJoins + `
LEFT JOIN player p ON p.player_id = c.player_id
LEFT JOIN game g ON g.game_id = c.game_id
LEFT JOIN class cl ON cl.class_id = sc.class_id
LEFT JOIN species sp ON sp.species_id = ss.species_id`

	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDZero     = "player ID is required"
)

type sqliteRepository struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite character repository
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

// NewSQLite creates a SQLite-backed character repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	characters, err := r.query(ctx, selectCharacters+" ORDER BY c.char_id")
	if err != nil {
		return nil, err
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *sqliteRepository) ListWithDetails(ctx context.Context, _ ListWithDetailsInput) (*ListWithDetailsOutput, error) {
	rows, err := r.db.QueryContext(ctx, selectCharacterDetails+" ORDER BY c.char_id")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query character details")
	}
	defer func() { _ = rows.Close() }()

	details := make([]*entities.CharacterDetails, 0)
	for rows.Next() {
		var d entities.CharacterDetails
		dest := append(characterDest(&d.Character), &d.PlayerFirstName, &d.PlayerLastName)
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "failed to scan character details")
		}
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read character details")
	}

	return &ListWithDetailsOutput{Characters: details}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var c entities.Character
	err := r.db.QueryRowContext(ctx, selectCharacters+" WHERE c.char_id = ?", input.ID).Scan(characterDest(&c)...)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetOutput{Character: &c}, nil
}

func (r *sqliteRepository) ListByPlayer(ctx context.Context, input ListByPlayerInput) (*ListByPlayerOutput, error) {
	if input.PlayerID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	characters, err := r.query(ctx, selectCharacters+" WHERE c.player_id = ? ORDER BY c.char_id", input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &ListByPlayerOutput{Characters: characters}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	c := input.Character
	a := c.AbilityScores
	_, err := r.db.ExecContext(ctx, `
INSERT INTO characters (char_id, lvl, subclass_id, subspecies_id, bg_id, player_id, game_id,
                        s_str, s_dex, s_con, s_int, s_wis, s_cha)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Level,
		sqlite.NullString(c.SubclassID), sqlite.NullString(c.SubspeciesID), sqlite.NullString(c.BackgroundID),
		c.PlayerID, c.CampaignID,
		a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma)
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to create character")
	}

	// class and species come from the subclass and subspecies joins
	stored, err := r.Get(ctx, GetInput{ID: c.ID})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Character: stored.Character}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	c := input.Character
	a := c.AbilityScores
	result, err := r.db.ExecContext(ctx, `
UPDATE characters
SET lvl = ?, subclass_id = ?, subspecies_id = ?, bg_id = ?, player_id = ?, game_id = ?,
    s_str = ?, s_dex = ?, s_con = ?, s_int = ?, s_wis = ?, s_cha = ?
WHERE char_id = ?`,
		c.Level,
		sqlite.NullString(c.SubclassID), sqlite.NullString(c.SubspeciesID), sqlite.NullString(c.BackgroundID),
		c.PlayerID, c.CampaignID,
		a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma,
		c.ID)
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to update character")
	}
	if err := requireAffected(result, c.ID); err != nil {
		return nil, err
	}

	stored, err := r.Get(ctx, GetInput{ID: c.ID})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Character: stored.Character}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM characters WHERE char_id = ?", input.ID)
	if err != nil {
		return nil, sqlite.DeleteError(err, "failed to delete character")
	}
	if err := requireAffected(result, input.ID); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) query(ctx context.Context, query string, args ...any) ([]*entities.Character, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query characters")
	}
	defer func() { _ = rows.Close() }()

	characters := make([]*entities.Character, 0)
	for rows.Next() {
		var c entities.Character
		if err := rows.Scan(characterDest(&c)...); err != nil {
			return nil, errors.Wrap(err, "failed to scan character")
		}
		characters = append(characters, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read characters")
	}

	return characters, nil
}

// characterDest matches the column order of characterColumns
func characterDest(c *entities.Character) []any {
	a := &c.AbilityScores
	return []any{
		&c.ID, &c.Level,
		&c.ClassID, &c.SubclassID,
		&c.SpeciesID, &c.SubspeciesID,
		&c.BackgroundID, &c.PlayerID, &c.CampaignID,
		&a.Strength, &a.Dexterity, &a.Constitution, &a.Intelligence, &a.Wisdom, &a.Charisma,
	}
}

func requireAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.NotFoundf("character %s not found", id)
	}
	return nil
}
