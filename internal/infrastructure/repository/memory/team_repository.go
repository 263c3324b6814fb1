package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}

	return &TeamRepository{teams: byID}
}

func (r *TeamRepository) List(_ context.Context, onlyActive bool) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		if onlyActive && !item.IsActive {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[item.ID]; exists {
		return team.Team{}, fmt.Errorf("team %s already exists", item.ID)
	}
	r.teams[item.ID] = item

	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[item.ID]; !exists {
		return team.Team{}, fmt.Errorf("team %s does not exist", item.ID)
	}
	r.teams[item.ID] = item

	return item, nil
}

func (r *TeamRepository) Deactivate(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.teams[teamID]
	if !exists {
		return fmt.Errorf("team %s does not exist", teamID)
	}
	item.IsActive = false
	r.teams[teamID] = item

	return nil
}

// ApplyResultDelta increments counters under the repository lock, so two
// concurrent results compound the way the SQL delta update does.
func (r *TeamRepository) ApplyResultDelta(_ context.Context, teamID string, delta team.ResultDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.teams[teamID]
	if !exists {
		return fmt.Errorf("team %s does not exist", teamID)
	}

	item.Stats.MatchesPlayed++
	item.Stats.Wins += delta.Wins
	item.Stats.Draws += delta.Draws
	item.Stats.Losses += delta.Losses
	item.Stats.GoalsFor += delta.GoalsFor
	item.Stats.GoalsAgainst += delta.GoalsAgainst
	item.Stats.Points += delta.Points
	r.teams[teamID] = item

	return nil
}
