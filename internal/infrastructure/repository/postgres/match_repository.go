package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalzone-ng/goalzone-api/internal/domain/match"
	qb "github.com/goalzone-ng/goalzone-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	builder := qb.Select("*").From("matches")
	if filter.Status != "" {
		builder = builder.Where(qb.Eq("status", string(filter.Status)))
	}
	if filter.Matchday != 0 {
		builder = builder.Where(qb.Eq("matchday", filter.Matchday))
	}
	if filter.TeamID != "" {
		builder = builder.Where(qb.Expr("(home_team_public_id = ? OR away_team_public_id = ?)", filter.TeamID, filter.TeamID))
	}
	if !filter.From.IsZero() {
		builder = builder.Where(qb.Expr("kickoff_at >= ?", filter.From))
	}
	if !filter.To.IsZero() {
		builder = builder.Where(qb.Expr("kickoff_at <= ?", filter.To))
	}
	query, args, err := builder.OrderBy("kickoff_at", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("public_id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match %s: %w", matchID, err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertInto("matches").
		Columns(
			"public_id", "season", "matchday",
			"home_team_public_id", "away_team_public_id",
			"kickoff_at", "venue", "status", "home_score", "away_score",
		).
		Values(
			item.ID, item.Season, item.Matchday,
			item.HomeTeamID, item.AwayTeamID,
			item.KickoffAt, item.Venue, string(item.Status), item.HomeScore, item.AwayScore,
		).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match %s: %w", item.ID, err)
	}

	return item, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.Update("matches").
		Set("season", item.Season).
		Set("matchday", item.Matchday).
		Set("home_team_public_id", item.HomeTeamID).
		Set("away_team_public_id", item.AwayTeamID).
		Set("kickoff_at", item.KickoffAt).
		Set("venue", item.Venue).
		Set("status", string(item.Status)).
		Set("home_score", item.HomeScore).
		Set("away_score", item.AwayScore).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build update match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match %s: %w", item.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return match.Match{}, fmt.Errorf("update match %s: no row matched", item.ID)
	}

	return item, nil
}

// Complete transitions a match to completed and stores the final score. The
// status guard in the WHERE clause makes a second completion attempt match
// zero rows, so a result can never be recorded twice.
func (r *MatchRepository) Complete(ctx context.Context, matchID string, homeScore, awayScore int) (match.Match, error) {
	query, args, err := qb.Update("matches").
		Set("status", string(match.StatusCompleted)).
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", matchID),
			qb.Expr("status <> ?", string(match.StatusCompleted)),
		).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build complete match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, fmt.Errorf("match %s does not exist or is already completed", matchID)
		}
		return match.Match{}, fmt.Errorf("complete match %s: %w", matchID, err)
	}

	return row.toDomain(), nil
}
