package postgres

import (
	"database/sql"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
)

type teamTableModel struct {
	ID               int64          `db:"id"`
	PublicID         string         `db:"public_id"`
	Name             string         `db:"name"`
	ShortName        string         `db:"short_name"`
	State            string         `db:"state"`
	FoundedYear      sql.NullInt64  `db:"founded_year"`
	StadiumName      sql.NullString `db:"stadium_name"`
	StadiumCapacity  sql.NullInt64  `db:"stadium_capacity"`
	StadiumCity      sql.NullString `db:"stadium_city"`
	PrimaryColor     sql.NullString `db:"primary_color"`
	SecondaryColor   sql.NullString `db:"secondary_color"`
	CoachName        sql.NullString `db:"coach_name"`
	CoachNationality sql.NullString `db:"coach_nationality"`
	CoachPhotoURL    sql.NullString `db:"coach_photo_url"`
	CaptainID        sql.NullString `db:"captain_public_id"`
	LogoURL          string         `db:"logo_url"`
	MatchesPlayed    int            `db:"matches_played"`
	Wins             int            `db:"wins"`
	Draws            int            `db:"draws"`
	Losses           int            `db:"losses"`
	GoalsFor         int            `db:"goals_for"`
	GoalsAgainst     int            `db:"goals_against"`
	Points           int            `db:"points"`
	IsActive         bool           `db:"is_active"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (row teamTableModel) toDomain() team.Team {
	item := team.Team{
		ID:          row.PublicID,
		Name:        row.Name,
		ShortName:   row.ShortName,
		State:       team.State(row.State),
		FoundedYear: int(row.FoundedYear.Int64),
		CaptainID:   row.CaptainID.String,
		LogoURL:     row.LogoURL,
		Stats: team.SeasonRecord{
			MatchesPlayed: row.MatchesPlayed,
			Wins:          row.Wins,
			Draws:         row.Draws,
			Losses:        row.Losses,
			GoalsFor:      row.GoalsFor,
			GoalsAgainst:  row.GoalsAgainst,
			Points:        row.Points,
		},
		IsActive: row.IsActive,
	}

	if row.StadiumName.Valid {
		item.Stadium = &team.Stadium{
			Name:     row.StadiumName.String,
			Capacity: int(row.StadiumCapacity.Int64),
			City:     row.StadiumCity.String,
		}
	}
	if row.PrimaryColor.Valid || row.SecondaryColor.Valid {
		item.Colors = &team.Colors{
			Primary:   row.PrimaryColor.String,
			Secondary: row.SecondaryColor.String,
		}
	}
	if row.CoachName.Valid {
		item.Coach = &team.Coach{
			Name:        row.CoachName.String,
			Nationality: row.CoachNationality.String,
			PhotoURL:    row.CoachPhotoURL.String,
		}
	}

	return item
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}
