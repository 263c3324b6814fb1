package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	qb "github.com/goalzone-ng/goalzone-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, onlyActive bool) ([]player.Player, error) {
	builder := qb.Select("*").From("players")
	if onlyActive {
		builder = builder.Where(qb.Eq("is_active", true))
	}
	query, args, err := builder.OrderBy("team_public_id", "jersey_number", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	return r.selectPlayers(ctx, query, args, "list players")
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_public_id", teamID)).
		OrderBy("jersey_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	return r.selectPlayers(ctx, query, args, "list players by team")
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args []any, op string) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("public_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player %s: %w", playerID, err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	injuryDescription, injuryReturn := injuryColumns(item)

	query, args, err := qb.InsertInto("players").
		Columns(
			"public_id", "team_public_id", "first_name", "last_name",
			"jersey_number", "position", "nationality", "date_of_birth",
			"height_cm", "weight_kg", "bio",
			"appearances", "goals", "assists", "yellow_cards", "red_cards", "minutes_played",
			"market_value", "contract_expiry",
			"is_active", "is_injured", "injury_description", "injury_expected_return",
			"photo_url",
		).
		Values(
			item.ID, item.TeamID, item.FirstName, item.LastName,
			item.JerseyNumber, string(item.Position), item.Nationality, item.DateOfBirth,
			nullInt64(int64(item.HeightCM)), nullInt64(int64(item.WeightKG)), item.Bio,
			item.Stats.Appearances, item.Stats.Goals, item.Stats.Assists,
			item.Stats.YellowCards, item.Stats.RedCards, item.Stats.MinutesPlayed,
			item.MarketValue, nullTime(item.ContractExpiry),
			item.IsActive, item.IsInjured, nullString(injuryDescription), injuryReturn,
			item.PhotoURL,
		).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, player.ErrJerseyTaken
		}
		return player.Player{}, fmt.Errorf("insert player %s: %w", item.ID, err)
	}

	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	injuryDescription, injuryReturn := injuryColumns(item)

	query, args, err := qb.Update("players").
		Set("team_public_id", item.TeamID).
		Set("first_name", item.FirstName).
		Set("last_name", item.LastName).
		Set("jersey_number", item.JerseyNumber).
		Set("position", string(item.Position)).
		Set("nationality", item.Nationality).
		Set("date_of_birth", item.DateOfBirth).
		Set("height_cm", nullInt64(int64(item.HeightCM))).
		Set("weight_kg", nullInt64(int64(item.WeightKG))).
		Set("bio", item.Bio).
		Set("market_value", item.MarketValue).
		Set("contract_expiry", nullTime(item.ContractExpiry)).
		Set("is_injured", item.IsInjured).
		Set("injury_description", nullString(injuryDescription)).
		Set("injury_expected_return", injuryReturn).
		Set("photo_url", item.PhotoURL).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, player.ErrJerseyTaken
		}
		return player.Player{}, fmt.Errorf("update player %s: %w", item.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return player.Player{}, fmt.Errorf("update player %s: no row matched", item.ID)
	}

	return item, nil
}

func (r *PlayerRepository) Deactivate(ctx context.Context, playerID string) error {
	query, args, err := qb.Update("players").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build deactivate player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deactivate player %s: %w", playerID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("deactivate player %s: no row matched", playerID)
	}

	return nil
}

// ApplyAppearance compounds the career counters in a single UPDATE, mirroring
// the team result delta write.
func (r *PlayerRepository) ApplyAppearance(ctx context.Context, delta player.AppearanceDelta) error {
	query, args, err := qb.Update("players").
		SetExpr("appearances", "appearances + 1").
		SetExpr("goals", "goals + ?", delta.Goals).
		SetExpr("assists", "assists + ?", delta.Assists).
		SetExpr("yellow_cards", "yellow_cards + ?", delta.YellowCards).
		SetExpr("red_cards", "red_cards + ?", delta.RedCards).
		SetExpr("minutes_played", "minutes_played + ?", delta.MinutesPlayed).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", delta.PlayerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build apply appearance query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("apply appearance player=%s: %w", delta.PlayerID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("apply appearance player=%s: no row matched", delta.PlayerID)
	}

	return nil
}

func injuryColumns(item player.Player) (string, sql.NullTime) {
	if item.Injury == nil {
		return "", sql.NullTime{}
	}

	return item.Injury.Description, nullTime(item.Injury.ExpectedReturn)
}
