package report

import (
	"context"
	"database/sql"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
)

type sqliteRepository struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite report repository
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

// NewSQLite creates a SQLite-backed report repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

// collect runs query and scans each row with scan. The result is never nil.
func collect[T any](ctx context.Context, db *sql.DB, name entities.ReportName, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to run report %s", name)
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan report %s", name)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read report %s", name)
	}

	return out, nil
}

func (r *sqliteRepository) CharactersByClassAndCampaign(ctx context.Context) ([]entities.CharacterClassCampaignRow, error) {
	return collect(ctx, r.db, entities.ReportCharactersByClassAndCampaign, queryCharactersByClassAndCampaign,
		func(rows *sql.Rows) (entities.CharacterClassCampaignRow, error) {
			var row entities.CharacterClassCampaignRow
			err := rows.Scan(&row.CharacterName, &row.Class, &row.Subclass, &row.Campaign)
			return row, err
		})
}

func (r *sqliteRepository) ClassesWithMostSubclasses(ctx context.Context) ([]entities.ClassSubclassCountRow, error) {
	return collect(ctx, r.db, entities.ReportClassesWithMostSubclasses, queryClassesWithMostSubclasses,
		func(rows *sql.Rows) (entities.ClassSubclassCountRow, error) {
			var row entities.ClassSubclassCountRow
			err := rows.Scan(&row.ClassID, &row.SubclassCount)
			return row, err
		})
}

func (r *sqliteRepository) AboveAverageLevelBySpecies(ctx context.Context) ([]entities.AboveAverageLevelRow, error) {
	return collect(ctx, r.db, entities.ReportAboveAverageLevelBySpecies, queryAboveAverageLevelBySpecies,
		func(rows *sql.Rows) (entities.AboveAverageLevelRow, error) {
			var row entities.AboveAverageLevelRow
			err := rows.Scan(&row.CharacterID, &row.Level, &row.SpeciesID)
			return row, err
		})
}

func (r *sqliteRepository) AllPlayersAndCharacters(ctx context.Context) ([]entities.PlayerCharacterRow, error) {
	return collect(ctx, r.db, entities.ReportAllPlayersAndCharacters, queryAllPlayersAndCharacters,
		func(rows *sql.Rows) (entities.PlayerCharacterRow, error) {
			var (
				row         entities.PlayerCharacterRow
				playerID    sql.NullInt64
				firstName   sql.NullString
				characterID sql.NullString
			)
			if err := rows.Scan(&playerID, &firstName, &characterID); err != nil {
				return row, err
			}
			if playerID.Valid {
				id := int(playerID.Int64)
				row.PlayerID = &id
			}
			if firstName.Valid {
				row.FirstName = &firstName.String
			}
			if characterID.Valid {
				row.CharacterID = &characterID.String
			}
			return row, nil
		})
}

func (r *sqliteRepository) PopularSettingsAndMilitary(ctx context.Context) ([]entities.SettingOrMilitaryRow, error) {
	return collect(ctx, r.db, entities.ReportPopularSettingsAndMilitary, queryPopularSettingsAndMilitary,
		func(rows *sql.Rows) (entities.SettingOrMilitaryRow, error) {
			var row entities.SettingOrMilitaryRow
			err := rows.Scan(&row.CharacterID, &row.Reason, &row.Detail)
			return row, err
		})
}

func (r *sqliteRepository) CharacterSpeciesAndSize(ctx context.Context) ([]entities.CharacterSpeciesSizeRow, error) {
	return collect(ctx, r.db, entities.ReportCharacterSpeciesAndSize, queryCharacterSpeciesAndSize,
		func(rows *sql.Rows) (entities.CharacterSpeciesSizeRow, error) {
			var row entities.CharacterSpeciesSizeRow
			err := rows.Scan(&row.CharacterID, &row.SpeciesID, &row.SpeciesSize)
			return row, err
		})
}

func (r *sqliteRepository) PlayerCharacterCounts(ctx context.Context) ([]entities.PlayerCharacterCountRow, error) {
	return collect(ctx, r.db, entities.ReportPlayerCharacterCounts, queryPlayerCharacterCounts,
		func(rows *sql.Rows) (entities.PlayerCharacterCountRow, error) {
			var row entities.PlayerCharacterCountRow
			err := rows.Scan(&row.PlayerID, &row.FirstName, &row.CharacterCount)
			return row, err
		})
}

func (r *sqliteRepository) CampaignParticipation(ctx context.Context) ([]entities.CampaignParticipationRow, error) {
	return collect(ctx, r.db, entities.ReportCampaignParticipation, queryCampaignParticipation,
		func(rows *sql.Rows) (entities.CampaignParticipationRow, error) {
			var row entities.CampaignParticipationRow
			err := rows.Scan(&row.CampaignID, &row.Setting, &row.NumPlayers)
			return row, err
		})
}

func (r *sqliteRepository) ClassDistribution(ctx context.Context) ([]entities.ClassDistributionRow, error) {
	return collect(ctx, r.db, entities.ReportClassDistribution, queryClassDistribution,
		func(rows *sql.Rows) (entities.ClassDistributionRow, error) {
			var row entities.ClassDistributionRow
			err := rows.Scan(&row.ClassID, &row.CharacterCount, &row.Percentage)
			return row, err
		})
}

func (r *sqliteRepository) CharacterAbilityModifiers(ctx context.Context) ([]entities.AbilityModifiersRow, error) {
	return collect(ctx, r.db, entities.ReportCharacterAbilityModifiers, queryCharacterAbilityScores,
		func(rows *sql.Rows) (entities.AbilityModifiersRow, error) {
			var (
				name, class, species string
				scores               entities.AbilityScores
			)
			err := rows.Scan(&name,
				&scores.Strength, &scores.Dexterity, &scores.Constitution,
				&scores.Intelligence, &scores.Wisdom, &scores.Charisma,
				&class, &species)
			if err != nil {
				return entities.AbilityModifiersRow{}, err
			}
			return entities.AbilityModifiersFromScores(name, class, species, scores), nil
		})
}
