package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
	// jerseys indexes (teamID, jerseyNumber) → playerID, mirroring the
	// composite unique index the SQL schema carries.
	jerseys map[jerseyKey]string
}

type jerseyKey struct {
	teamID string
	number int
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byID := make(map[string]player.Player, len(players))
	jerseys := make(map[jerseyKey]string, len(players))
	for _, item := range players {
		byID[item.ID] = item
		jerseys[jerseyKey{teamID: item.TeamID, number: item.JerseyNumber}] = item.ID
	}

	return &PlayerRepository{
		players: byID,
		jerseys: jerseys,
	}
}

func (r *PlayerRepository) List(_ context.Context, onlyActive bool) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if onlyActive && !item.IsActive {
			continue
		}
		out = append(out, item)
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.players {
		if item.TeamID == teamID && item.IsActive {
			out = append(out, item)
		}
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[item.ID]; exists {
		return player.Player{}, fmt.Errorf("player %s already exists", item.ID)
	}

	key := jerseyKey{teamID: item.TeamID, number: item.JerseyNumber}
	if holder, taken := r.jerseys[key]; taken && holder != item.ID {
		return player.Player{}, fmt.Errorf("%w: number %d on team %s", player.ErrJerseyTaken, item.JerseyNumber, item.TeamID)
	}

	r.players[item.ID] = item
	r.jerseys[key] = item.ID

	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.players[item.ID]
	if !exists {
		return player.Player{}, fmt.Errorf("player %s does not exist", item.ID)
	}

	key := jerseyKey{teamID: item.TeamID, number: item.JerseyNumber}
	if holder, taken := r.jerseys[key]; taken && holder != item.ID {
		return player.Player{}, fmt.Errorf("%w: number %d on team %s", player.ErrJerseyTaken, item.JerseyNumber, item.TeamID)
	}

	delete(r.jerseys, jerseyKey{teamID: existing.TeamID, number: existing.JerseyNumber})
	r.players[item.ID] = item
	r.jerseys[key] = item.ID

	return item, nil
}

func (r *PlayerRepository) Deactivate(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.players[playerID]
	if !exists {
		return fmt.Errorf("player %s does not exist", playerID)
	}
	item.IsActive = false
	r.players[playerID] = item

	return nil
}

func (r *PlayerRepository) ApplyAppearance(_ context.Context, delta player.AppearanceDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.players[delta.PlayerID]
	if !exists {
		return fmt.Errorf("player %s does not exist", delta.PlayerID)
	}
	item.Stats = item.Stats.Apply(delta)
	r.players[delta.PlayerID] = item

	return nil
}

func sortPlayers(items []player.Player) {
	sort.Slice(items, func(a, b int) bool {
		if items[a].TeamID != items[b].TeamID {
			return items[a].TeamID < items[b].TeamID
		}
		return items[a].JerseyNumber < items[b].JerseyNumber
	})
}
