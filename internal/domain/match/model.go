package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
)

// Status is the lifecycle state of a fixture.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusPostponed Status = "postponed"
)

var AllStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusLive:      {},
	StatusCompleted: {},
	StatusPostponed: {},
}

// Match is a fixture between two teams.
type Match struct {
	ID         string
	Season     string
	Matchday   int
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
	Venue      string
	Status     Status
	HomeScore  int
	AwayScore  int
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Season) == "" {
		return fmt.Errorf("match season is required")
	}
	if m.Matchday <= 0 {
		return fmt.Errorf("matchday must be greater than zero")
	}
	if strings.TrimSpace(m.HomeTeamID) == "" {
		return fmt.Errorf("home team id is required")
	}
	if strings.TrimSpace(m.AwayTeamID) == "" {
		return fmt.Errorf("away team id is required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("a team cannot play itself")
	}
	if m.KickoffAt.IsZero() {
		return fmt.Errorf("kickoff time is required")
	}
	if _, ok := AllStatuses[m.Status]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("scores must be non-negative")
	}

	return nil
}

// Result carries the final score of one match together with the per-player
// contributions to fold into career stats.
type Result struct {
	HomeScore   int
	AwayScore   int
	Appearances []player.AppearanceDelta
}

func (r Result) Validate() error {
	if r.HomeScore < 0 || r.AwayScore < 0 {
		return fmt.Errorf("scores must be non-negative")
	}
	for _, delta := range r.Appearances {
		if err := delta.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Outcomes classifies the result from each side's perspective.
func (r Result) Outcomes() (home, away team.MatchOutcome) {
	switch {
	case r.HomeScore > r.AwayScore:
		return team.OutcomeWin, team.OutcomeLoss
	case r.HomeScore < r.AwayScore:
		return team.OutcomeLoss, team.OutcomeWin
	default:
		return team.OutcomeDraw, team.OutcomeDraw
	}
}
