package postgres

import (
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/match"
)

type matchTableModel struct {
	ID         int64     `db:"id"`
	PublicID   string    `db:"public_id"`
	Season     string    `db:"season"`
	Matchday   int       `db:"matchday"`
	HomeTeamID string    `db:"home_team_public_id"`
	AwayTeamID string    `db:"away_team_public_id"`
	KickoffAt  time.Time `db:"kickoff_at"`
	Venue      string    `db:"venue"`
	Status     string    `db:"status"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         row.PublicID,
		Season:     row.Season,
		Matchday:   row.Matchday,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		KickoffAt:  row.KickoffAt,
		Venue:      row.Venue,
		Status:     match.Status(row.Status),
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
	}
}
