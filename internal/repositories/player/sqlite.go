package player

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/storage/sqlite"
)

const (
	selectPlayers = `
SELECT player_id, fname, COALESCE(lname, ''), COALESCE(pref_contact, ''), contact_info, COALESCE(time_zone, '')
FROM player`

	errPlayerNil    = "player cannot be nil"
	errPlayerIDZero = "player ID is required"
)

type sqliteRepository struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite player repository
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

// NewSQLite creates a SQLite-backed player repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, selectPlayers+" ORDER BY fname, player_id")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query players")
	}
	defer func() { _ = rows.Close() }()

	players := make([]*entities.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan player")
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read players")
	}

	return &ListOutput{Players: players}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	p, err := scanPlayer(r.db.QueryRowContext(ctx, selectPlayers+" WHERE player_id = ?", input.ID))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("player with ID %d not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get player")
	}

	return &GetOutput{Player: p}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	p := input.Player
	_, err := r.db.ExecContext(ctx, `
INSERT INTO player (player_id, fname, lname, pref_contact, contact_info, time_zone)
VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.FirstName, sqlite.NullString(p.LastName), sqlite.NullString(p.PreferredContact),
		p.ContactInfo, sqlite.NullString(p.TimeZone))
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to create player")
	}

	return &CreateOutput{Player: p}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	p := input.Player
	result, err := r.db.ExecContext(ctx, `
UPDATE player
SET fname = ?, lname = ?, pref_contact = ?, contact_info = ?, time_zone = ?
WHERE player_id = ?`,
		p.FirstName, sqlite.NullString(p.LastName), sqlite.NullString(p.PreferredContact),
		p.ContactInfo, sqlite.NullString(p.TimeZone), p.ID)
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to update player")
	}
	if err := requireAffected(result, p.ID); err != nil {
		return nil, err
	}

	return &UpdateOutput{Player: p}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errPlayerIDZero)
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM player WHERE player_id = ?", input.ID)
	if err != nil {
		return nil, sqlite.DeleteError(err, "failed to delete player")
	}
	if err := requireAffected(result, input.ID); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) NextID(ctx context.Context, _ NextIDInput) (*NextIDOutput, error) {
	var id int
	if err := r.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(player_id), 0) + 1 FROM player").Scan(&id); err != nil {
		return nil, errors.Wrap(err, "failed to allocate player ID")
	}

	return &NextIDOutput{ID: id}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (*entities.Player, error) {
	var p entities.Player
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.PreferredContact, &p.ContactInfo, &p.TimeZone); err != nil {
		return nil, err
	}
	return &p, nil
}

func requireAffected(result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.NotFoundf("player with ID %d not found", id)
	}
	return nil
}
