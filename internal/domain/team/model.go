package team

import (
	"fmt"
	"strings"
	"time"
)

const (
	MaxShortNameLength = 5
	MinFoundedYear     = 1900
)

// State is the Nigerian state (or the FCT) a club is registered in.
type State string

const (
	StateAbia        State = "Abia"
	StateAdamawa     State = "Adamawa"
	StateAkwaIbom    State = "Akwa Ibom"
	StateAnambra     State = "Anambra"
	StateBauchi      State = "Bauchi"
	StateBayelsa     State = "Bayelsa"
	StateBenue       State = "Benue"
	StateBorno       State = "Borno"
	StateCrossRiver  State = "Cross River"
	StateDelta       State = "Delta"
	StateEbonyi      State = "Ebonyi"
	StateEdo         State = "Edo"
	StateEkiti       State = "Ekiti"
	StateEnugu       State = "Enugu"
	StateGombe       State = "Gombe"
	StateImo         State = "Imo"
	StateJigawa      State = "Jigawa"
	StateKaduna      State = "Kaduna"
	StateKano        State = "Kano"
	StateKatsina     State = "Katsina"
	StateKebbi       State = "Kebbi"
	StateKogi        State = "Kogi"
	StateKwara       State = "Kwara"
	StateLagos       State = "Lagos"
	StateNasarawa    State = "Nasarawa"
	StateNiger       State = "Niger"
	StateOgun        State = "Ogun"
	StateOndo        State = "Ondo"
	StateOsun        State = "Osun"
	StateOyo         State = "Oyo"
	StatePlateau     State = "Plateau"
	StateRivers      State = "Rivers"
	StateSokoto      State = "Sokoto"
	StateTaraba      State = "Taraba"
	StateYobe        State = "Yobe"
	StateZamfara     State = "Zamfara"
	StateFCT         State = "FCT"
)

var AllStates = map[State]struct{}{
	StateAbia: {}, StateAdamawa: {}, StateAkwaIbom: {}, StateAnambra: {},
	StateBauchi: {}, StateBayelsa: {}, StateBenue: {}, StateBorno: {},
	StateCrossRiver: {}, StateDelta: {}, StateEbonyi: {}, StateEdo: {},
	StateEkiti: {}, StateEnugu: {}, StateGombe: {}, StateImo: {},
	StateJigawa: {}, StateKaduna: {}, StateKano: {}, StateKatsina: {},
	StateKebbi: {}, StateKogi: {}, StateKwara: {}, StateLagos: {},
	StateNasarawa: {}, StateNiger: {}, StateOgun: {}, StateOndo: {},
	StateOsun: {}, StateOyo: {}, StatePlateau: {}, StateRivers: {},
	StateSokoto: {}, StateTaraba: {}, StateYobe: {}, StateZamfara: {},
	StateFCT: {},
}

// MatchOutcome is the three-way classification of one completed match from
// a single team's perspective. Exactly one applies per result.
type MatchOutcome string

const (
	OutcomeWin  MatchOutcome = "win"
	OutcomeDraw MatchOutcome = "draw"
	OutcomeLoss MatchOutcome = "loss"
)

func (o MatchOutcome) Valid() bool {
	switch o {
	case OutcomeWin, OutcomeDraw, OutcomeLoss:
		return true
	default:
		return false
	}
}

// Points awarded for the outcome: 3 for a win, 1 for a draw, 0 for a loss.
func (o MatchOutcome) Points() int {
	switch o {
	case OutcomeWin:
		return 3
	case OutcomeDraw:
		return 1
	default:
		return 0
	}
}

// SeasonRecord holds a team's cumulative league counters for one season.
type SeasonRecord struct {
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
	Points        int
}

// ResultDelta is the per-counter change produced by one match result. It is
// what repositories persist as an atomic increment, so two results recorded
// concurrently compound instead of overwriting each other.
type ResultDelta struct {
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// DeltaForResult classifies one result into counter increments.
func DeltaForResult(goalsFor, goalsAgainst int, outcome MatchOutcome) (ResultDelta, error) {
	if goalsFor < 0 || goalsAgainst < 0 {
		return ResultDelta{}, fmt.Errorf("goals must be non-negative, got %d:%d", goalsFor, goalsAgainst)
	}
	if !outcome.Valid() {
		return ResultDelta{}, fmt.Errorf("invalid match outcome: %s", outcome)
	}

	delta := ResultDelta{
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
		Points:       outcome.Points(),
	}
	switch outcome {
	case OutcomeWin:
		delta.Wins = 1
	case OutcomeDraw:
		delta.Draws = 1
	case OutcomeLoss:
		delta.Losses = 1
	}

	return delta, nil
}

// ApplyResult folds one completed match into the record. Matches played,
// goals for and goals against accumulate on every call; exactly one of the
// win/draw/loss counters advances.
func (r SeasonRecord) ApplyResult(goalsFor, goalsAgainst int, outcome MatchOutcome) (SeasonRecord, error) {
	delta, err := DeltaForResult(goalsFor, goalsAgainst, outcome)
	if err != nil {
		return r, err
	}

	r.MatchesPlayed++
	r.Wins += delta.Wins
	r.Draws += delta.Draws
	r.Losses += delta.Losses
	r.GoalsFor += delta.GoalsFor
	r.GoalsAgainst += delta.GoalsAgainst
	r.Points += delta.Points

	return r, nil
}

// GoalDifference is goals for minus goals against; negative is allowed. It
// is derived on every read and never stored.
func (r SeasonRecord) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Stadium is a club's home ground.
type Stadium struct {
	Name     string
	Capacity int
	City     string
}

// Colors are the club's kit colors.
type Colors struct {
	Primary   string
	Secondary string
}

// Coach is the current head coach.
type Coach struct {
	Name        string
	Nationality string
	PhotoURL    string
}

// Team is a football club on the platform. Squad membership is derived by
// querying players whose TeamID points here; the team record carries no
// player list of its own.
type Team struct {
	ID          string
	Name        string
	ShortName   string
	State       State
	FoundedYear int
	Stadium     *Stadium
	Colors      *Colors
	Coach       *Coach
	CaptainID   string
	LogoURL     string
	Stats       SeasonRecord
	IsActive    bool
}

// Validate checks per-field constraints. The founded-year ceiling comes
// from the supplied clock so it stays correct across year boundaries.
func (t Team) Validate(now time.Time) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	short := strings.TrimSpace(t.ShortName)
	if short == "" {
		return fmt.Errorf("team short name is required")
	}
	if len(short) > MaxShortNameLength {
		return fmt.Errorf("team short name must be at most %d characters, got %d", MaxShortNameLength, len(short))
	}
	if _, ok := AllStates[t.State]; !ok {
		return fmt.Errorf("invalid team state: %s", t.State)
	}
	if t.FoundedYear != 0 {
		if t.FoundedYear < MinFoundedYear || t.FoundedYear > now.Year() {
			return fmt.Errorf("founded year must be between %d and %d, got %d", MinFoundedYear, now.Year(), t.FoundedYear)
		}
	}
	if t.Stadium != nil && t.Stadium.Capacity < 0 {
		return fmt.Errorf("stadium capacity must be non-negative")
	}

	return nil
}
