package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
	qb "github.com/goalzone-ng/goalzone-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, onlyActive bool) ([]team.Team, error) {
	builder := qb.Select("*").From("teams")
	if onlyActive {
		builder = builder.Where(qb.Eq("is_active", true))
	}
	query, args, err := builder.OrderBy("name", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("public_id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team %s: %w", teamID, err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	columns, values := teamWriteColumns(item)
	query, args, err := qb.InsertInto("teams").
		Columns(columns...).
		Values(values...).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team %s: %w", item.ID, err)
	}

	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	builder := qb.Update("teams").
		Set("name", item.Name).
		Set("short_name", item.ShortName).
		Set("state", string(item.State)).
		Set("founded_year", nullInt64(int64(item.FoundedYear))).
		Set("captain_public_id", nullString(item.CaptainID)).
		Set("logo_url", item.LogoURL).
		SetExpr("updated_at", "NOW()")
	builder = setTeamDetailColumns(builder, item)
	query, args, err := builder.
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build update team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team %s: %w", item.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return team.Team{}, fmt.Errorf("update team %s: no row matched", item.ID)
	}

	return item, nil
}

func (r *TeamRepository) Deactivate(ctx context.Context, teamID string) error {
	query, args, err := qb.Update("teams").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build deactivate team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deactivate team %s: %w", teamID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("deactivate team %s: no row matched", teamID)
	}

	return nil
}

// ApplyResultDelta compounds the season counters in a single UPDATE so
// concurrent result writes never overwrite each other.
func (r *TeamRepository) ApplyResultDelta(ctx context.Context, teamID string, delta team.ResultDelta) error {
	query, args, err := qb.Update("teams").
		SetExpr("matches_played", "matches_played + 1").
		SetExpr("wins", "wins + ?", delta.Wins).
		SetExpr("draws", "draws + ?", delta.Draws).
		SetExpr("losses", "losses + ?", delta.Losses).
		SetExpr("goals_for", "goals_for + ?", delta.GoalsFor).
		SetExpr("goals_against", "goals_against + ?", delta.GoalsAgainst).
		SetExpr("points", "points + ?", delta.Points).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build apply result delta query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("apply result delta team=%s: %w", teamID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("apply result delta team=%s: no row matched", teamID)
	}

	return nil
}

func teamWriteColumns(item team.Team) ([]string, []any) {
	columns := []string{
		"public_id", "name", "short_name", "state", "founded_year",
		"stadium_name", "stadium_capacity", "stadium_city",
		"primary_color", "secondary_color",
		"coach_name", "coach_nationality", "coach_photo_url",
		"captain_public_id", "logo_url",
		"matches_played", "wins", "draws", "losses",
		"goals_for", "goals_against", "points", "is_active",
	}

	var stadiumName, stadiumCity, primaryColor, secondaryColor string
	var coachName, coachNationality, coachPhotoURL string
	var stadiumCapacity int64
	if item.Stadium != nil {
		stadiumName = item.Stadium.Name
		stadiumCapacity = int64(item.Stadium.Capacity)
		stadiumCity = item.Stadium.City
	}
	if item.Colors != nil {
		primaryColor = item.Colors.Primary
		secondaryColor = item.Colors.Secondary
	}
	if item.Coach != nil {
		coachName = item.Coach.Name
		coachNationality = item.Coach.Nationality
		coachPhotoURL = item.Coach.PhotoURL
	}

	values := []any{
		item.ID, item.Name, item.ShortName, string(item.State), nullInt64(int64(item.FoundedYear)),
		nullString(stadiumName), nullInt64(stadiumCapacity), nullString(stadiumCity),
		nullString(primaryColor), nullString(secondaryColor),
		nullString(coachName), nullString(coachNationality), nullString(coachPhotoURL),
		nullString(item.CaptainID), item.LogoURL,
		item.Stats.MatchesPlayed, item.Stats.Wins, item.Stats.Draws, item.Stats.Losses,
		item.Stats.GoalsFor, item.Stats.GoalsAgainst, item.Stats.Points, item.IsActive,
	}

	return columns, values
}

func setTeamDetailColumns(builder *qb.UpdateBuilder, item team.Team) *qb.UpdateBuilder {
	var stadiumName, stadiumCity, primaryColor, secondaryColor string
	var coachName, coachNationality, coachPhotoURL string
	var stadiumCapacity int64
	if item.Stadium != nil {
		stadiumName = item.Stadium.Name
		stadiumCapacity = int64(item.Stadium.Capacity)
		stadiumCity = item.Stadium.City
	}
	if item.Colors != nil {
		primaryColor = item.Colors.Primary
		secondaryColor = item.Colors.Secondary
	}
	if item.Coach != nil {
		coachName = item.Coach.Name
		coachNationality = item.Coach.Nationality
		coachPhotoURL = item.Coach.PhotoURL
	}

	return builder.
		Set("stadium_name", nullString(stadiumName)).
		Set("stadium_capacity", nullInt64(stadiumCapacity)).
		Set("stadium_city", nullString(stadiumCity)).
		Set("primary_color", nullString(primaryColor)).
		Set("secondary_color", nullString(secondaryColor)).
		Set("coach_name", nullString(coachName)).
		Set("coach_nationality", nullString(coachNationality)).
		Set("coach_photo_url", nullString(coachPhotoURL))
}
