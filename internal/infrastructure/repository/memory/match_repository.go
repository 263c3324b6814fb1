package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goalzone-ng/goalzone-api/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = item
	}

	return &MatchRepository{matches: byID}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.Matchday != 0 && item.Matchday != filter.Matchday {
			continue
		}
		if filter.TeamID != "" && item.HomeTeamID != filter.TeamID && item.AwayTeamID != filter.TeamID {
			continue
		}
		if !filter.From.IsZero() && item.KickoffAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && item.KickoffAt.After(filter.To) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].KickoffAt.Before(out[b].KickoffAt) })

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[item.ID]; exists {
		return match.Match{}, fmt.Errorf("match %s already exists", item.ID)
	}
	r.matches[item.ID] = item

	return item, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[item.ID]; !exists {
		return match.Match{}, fmt.Errorf("match %s does not exist", item.ID)
	}
	r.matches[item.ID] = item

	return item, nil
}

func (r *MatchRepository) Complete(_ context.Context, matchID string, homeScore, awayScore int) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.matches[matchID]
	if !exists {
		return match.Match{}, fmt.Errorf("match %s does not exist", matchID)
	}
	if item.Status == match.StatusCompleted {
		return match.Match{}, fmt.Errorf("match %s is already completed", matchID)
	}

	item.Status = match.StatusCompleted
	item.HomeScore = homeScore
	item.AwayScore = awayScore
	r.matches[matchID] = item

	return item, nil
}
