package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
)

// StandingRow is one line of the league table.
type StandingRow struct {
	Position       int
	TeamID         string
	TeamName       string
	ShortName      string
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

type StandingsService struct {
	teamRepo team.Repository
	workers  int
}

func NewStandingsService(teamRepo team.Repository, workers int) *StandingsService {
	if workers < 1 {
		workers = 4
	}

	return &StandingsService{
		teamRepo: teamRepo,
		workers:  workers,
	}
}

// Table builds the league table from the live season records of all active
// teams, ordered by points, then goal difference, then goals scored.
// Records are re-read per call; every stats field is a moving counter.
func (s *StandingsService) Table(ctx context.Context) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list teams for standings: %w", err)
	}

	rows := make([]StandingRow, len(teams))
	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create standings worker pool: %w", err)
	}
	defer workerPool.Release()

	var wg sync.WaitGroup
	var submitErr error
	for i := range teams {
		i := i
		wg.Add(1)
		err := workerPool.Submit(func() {
			defer wg.Done()
			t := teams[i]
			rows[i] = StandingRow{
				TeamID:         t.ID,
				TeamName:       t.Name,
				ShortName:      t.ShortName,
				Played:         t.Stats.MatchesPlayed,
				Wins:           t.Stats.Wins,
				Draws:          t.Stats.Draws,
				Losses:         t.Stats.Losses,
				GoalsFor:       t.Stats.GoalsFor,
				GoalsAgainst:   t.Stats.GoalsAgainst,
				GoalDifference: t.Stats.GoalDifference(),
				Points:         t.Stats.Points,
			}
		})
		if err != nil {
			wg.Done()
			submitErr = err
			break
		}
	}
	// Submitted workers write into rows; drain them before returning.
	wg.Wait()
	if submitErr != nil {
		return nil, fmt.Errorf("submit standings work: %w", submitErr)
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Points != rows[b].Points {
			return rows[a].Points > rows[b].Points
		}
		if rows[a].GoalDifference != rows[b].GoalDifference {
			return rows[a].GoalDifference > rows[b].GoalDifference
		}
		if rows[a].GoalsFor != rows[b].GoalsFor {
			return rows[a].GoalsFor > rows[b].GoalsFor
		}
		return rows[a].TeamName < rows[b].TeamName
	})

	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows, nil
}
