package campaign

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/storage/sqlite"
)

const (
	selectCampaigns = `
SELECT game_id, setting, COALESCE(synopsis, ''), meeting_time, max_players
FROM game`

	errCampaignNil     = "campaign cannot be nil"
	errCampaignIDEmpty = "campaign ID cannot be empty"
)

type sqliteRepository struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite campaign repository
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

// NewSQLite creates a SQLite-backed campaign repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, selectCampaigns+" ORDER BY game_id")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query campaigns")
	}
	defer func() { _ = rows.Close() }()

	campaigns := make([]*entities.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan campaign")
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read campaigns")
	}

	return &ListOutput{Campaigns: campaigns}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	c, err := scanCampaign(r.db.QueryRowContext(ctx, selectCampaigns+" WHERE game_id = ?", input.ID))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("campaign %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get campaign")
	}

	return &GetOutput{Campaign: c}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Campaign == nil {
		return nil, errors.InvalidArgument(errCampaignNil)
	}
	if input.Campaign.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	c := input.Campaign
	_, err := r.db.ExecContext(ctx, `
INSERT INTO game (game_id, setting, synopsis, meeting_time, max_players)
VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Setting, sqlite.NullString(c.Synopsis), toMillis(c.MeetingTime), c.MaxPlayers)
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to create campaign")
	}

	return &CreateOutput{Campaign: c}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Campaign == nil {
		return nil, errors.InvalidArgument(errCampaignNil)
	}
	if input.Campaign.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	c := input.Campaign
	result, err := r.db.ExecContext(ctx, `
UPDATE game
SET setting = ?, synopsis = ?, meeting_time = ?, max_players = ?
WHERE game_id = ?`,
		c.Setting, sqlite.NullString(c.Synopsis), toMillis(c.MeetingTime), c.MaxPlayers, c.ID)
	if err != nil {
		return nil, sqlite.WriteError(err, "failed to update campaign")
	}
	if err := requireAffected(result, c.ID); err != nil {
		return nil, err
	}

	return &UpdateOutput{Campaign: c}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM game WHERE game_id = ?", input.ID)
	if err != nil {
		return nil, sqlite.DeleteError(err, "failed to delete campaign")
	}
	if err := requireAffected(result, input.ID); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row scanner) (*entities.Campaign, error) {
	var (
		c       entities.Campaign
		meeting sql.NullInt64
	)
	if err := row.Scan(&c.ID, &c.Setting, &c.Synopsis, &meeting, &c.MaxPlayers); err != nil {
		return nil, err
	}
	if meeting.Valid {
		t := time.UnixMilli(meeting.Int64).UTC()
		c.MeetingTime = &t
	}
	return &c, nil
}

// meeting times are stored as unix milliseconds
func toMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

func requireAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.NotFoundf("campaign %s not found", id)
	}
	return nil
}
