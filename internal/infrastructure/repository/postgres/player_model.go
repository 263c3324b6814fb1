package postgres

import (
	"database/sql"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
)

type playerTableModel struct {
	ID                   int64          `db:"id"`
	PublicID             string         `db:"public_id"`
	TeamID               string         `db:"team_public_id"`
	FirstName            string         `db:"first_name"`
	LastName             string         `db:"last_name"`
	JerseyNumber         int            `db:"jersey_number"`
	Position             string         `db:"position"`
	Nationality          string         `db:"nationality"`
	DateOfBirth          time.Time      `db:"date_of_birth"`
	HeightCM             sql.NullInt64  `db:"height_cm"`
	WeightKG             sql.NullInt64  `db:"weight_kg"`
	Bio                  string         `db:"bio"`
	Appearances          int            `db:"appearances"`
	Goals                int            `db:"goals"`
	Assists              int            `db:"assists"`
	YellowCards          int            `db:"yellow_cards"`
	RedCards             int            `db:"red_cards"`
	MinutesPlayed        int            `db:"minutes_played"`
	MarketValue          int64          `db:"market_value"`
	ContractExpiry       sql.NullTime   `db:"contract_expiry"`
	IsActive             bool           `db:"is_active"`
	IsInjured            bool           `db:"is_injured"`
	InjuryDescription    sql.NullString `db:"injury_description"`
	InjuryExpectedReturn sql.NullTime   `db:"injury_expected_return"`
	PhotoURL             string         `db:"photo_url"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func (row playerTableModel) toDomain() player.Player {
	item := player.Player{
		ID:           row.PublicID,
		TeamID:       row.TeamID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		JerseyNumber: row.JerseyNumber,
		Position:     player.Position(row.Position),
		Nationality:  row.Nationality,
		DateOfBirth:  row.DateOfBirth,
		HeightCM:     int(row.HeightCM.Int64),
		WeightKG:     int(row.WeightKG.Int64),
		Bio:          row.Bio,
		Stats: player.CareerStats{
			Appearances:   row.Appearances,
			Goals:         row.Goals,
			Assists:       row.Assists,
			YellowCards:   row.YellowCards,
			RedCards:      row.RedCards,
			MinutesPlayed: row.MinutesPlayed,
		},
		MarketValue: row.MarketValue,
		IsActive:    row.IsActive,
		IsInjured:   row.IsInjured,
		PhotoURL:    row.PhotoURL,
	}

	if row.ContractExpiry.Valid {
		expiry := row.ContractExpiry.Time
		item.ContractExpiry = &expiry
	}
	if row.IsInjured && row.InjuryDescription.Valid {
		injury := &player.InjuryDetails{Description: row.InjuryDescription.String}
		if row.InjuryExpectedReturn.Valid {
			ret := row.InjuryExpectedReturn.Time
			injury.ExpectedReturn = &ret
		}
		item.Injury = injury
	}

	return item
}
