package player

import (
	"fmt"
	"strings"
	"time"
)

// Position is the on-pitch role code for a player.
type Position string

const (
	PositionGoalkeeper        Position = "GK"
	PositionRightBack         Position = "RB"
	PositionCentreBack        Position = "CB"
	PositionLeftBack          Position = "LB"
	PositionRightWingBack     Position = "RWB"
	PositionLeftWingBack      Position = "LWB"
	PositionDefensiveMidfield Position = "CDM"
	PositionCentralMidfield   Position = "CM"
	PositionAttackingMidfield Position = "CAM"
	PositionRightWinger       Position = "RW"
	PositionLeftWinger        Position = "LW"
	PositionCentreForward     Position = "CF"
	PositionStriker           Position = "ST"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper:        {},
	PositionRightBack:         {},
	PositionCentreBack:        {},
	PositionLeftBack:          {},
	PositionRightWingBack:     {},
	PositionLeftWingBack:      {},
	PositionDefensiveMidfield: {},
	PositionCentralMidfield:   {},
	PositionAttackingMidfield: {},
	PositionRightWinger:       {},
	PositionLeftWinger:        {},
	PositionCentreForward:     {},
	PositionStriker:           {},
}

const (
	MinJerseyNumber = 1
	MaxJerseyNumber = 99
	MinHeightCM     = 150
	MaxHeightCM     = 220
	MinWeightKG     = 50
	MaxWeightKG     = 120
	MaxBioLength    = 500
)

// CareerStats holds cumulative counters across a player's recorded matches.
type CareerStats struct {
	Appearances   int
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
}

func (s CareerStats) Validate() error {
	if s.Appearances < 0 || s.Goals < 0 || s.Assists < 0 ||
		s.YellowCards < 0 || s.RedCards < 0 || s.MinutesPlayed < 0 {
		return fmt.Errorf("career stats counters must be non-negative")
	}

	return nil
}

// AppearanceDelta is one player's contribution in a single completed match.
type AppearanceDelta struct {
	PlayerID      string
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
}

func (d AppearanceDelta) Validate() error {
	if strings.TrimSpace(d.PlayerID) == "" {
		return fmt.Errorf("appearance player id is required")
	}
	if d.Goals < 0 || d.Assists < 0 || d.YellowCards < 0 || d.RedCards < 0 || d.MinutesPlayed < 0 {
		return fmt.Errorf("appearance counters must be non-negative")
	}

	return nil
}

// Apply folds one match appearance into the cumulative counters.
func (s CareerStats) Apply(delta AppearanceDelta) CareerStats {
	s.Appearances++
	s.Goals += delta.Goals
	s.Assists += delta.Assists
	s.YellowCards += delta.YellowCards
	s.RedCards += delta.RedCards
	s.MinutesPlayed += delta.MinutesPlayed

	return s
}

// InjuryDetails describes a current injury when IsInjured is set.
type InjuryDetails struct {
	Description    string
	ExpectedReturn *time.Time
}

// Player is a registered athlete belonging to exactly one team.
type Player struct {
	ID             string
	TeamID         string
	FirstName      string
	LastName       string
	JerseyNumber   int
	Position       Position
	Nationality    string
	DateOfBirth    time.Time
	HeightCM       int
	WeightKG       int
	Bio            string
	Stats          CareerStats
	MarketValue    int64
	ContractExpiry *time.Time
	IsActive       bool
	IsInjured      bool
	Injury         *InjuryDetails
	PhotoURL       string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.TeamID) == "" {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if p.JerseyNumber < MinJerseyNumber || p.JerseyNumber > MaxJerseyNumber {
		return fmt.Errorf("jersey number must be between %d and %d, got %d", MinJerseyNumber, MaxJerseyNumber, p.JerseyNumber)
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if strings.TrimSpace(p.Nationality) == "" {
		return fmt.Errorf("player nationality is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("player date of birth is required")
	}
	if p.HeightCM != 0 && (p.HeightCM < MinHeightCM || p.HeightCM > MaxHeightCM) {
		return fmt.Errorf("height must be between %d and %d cm, got %d", MinHeightCM, MaxHeightCM, p.HeightCM)
	}
	if p.WeightKG != 0 && (p.WeightKG < MinWeightKG || p.WeightKG > MaxWeightKG) {
		return fmt.Errorf("weight must be between %d and %d kg, got %d", MinWeightKG, MaxWeightKG, p.WeightKG)
	}
	if len(p.Bio) > MaxBioLength {
		return fmt.Errorf("bio must be at most %d characters, got %d", MaxBioLength, len(p.Bio))
	}
	if p.MarketValue < 0 {
		return fmt.Errorf("market value must be non-negative")
	}
	if err := p.Stats.Validate(); err != nil {
		return err
	}

	return nil
}

// FullName joins first and last name with a single space. It is derived on
// every read and never stored.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Age returns whole years elapsed since DateOfBirth as of now, decremented
// when the birthday has not yet occurred this year. The second return is
// false when DateOfBirth is unset.
func (p Player) Age(now time.Time) (int, bool) {
	if p.DateOfBirth.IsZero() {
		return 0, false
	}

	years := now.Year() - p.DateOfBirth.Year()
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		years--
	}

	return years, true
}
