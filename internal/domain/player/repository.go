package player

import (
	"context"
	"errors"
)

// ErrJerseyTaken reports a write that would give two players on the same
// team the same jersey number. The storage layer enforces this with a
// composite unique index on (team_id, jersey_number).
var ErrJerseyTaken = errors.New("jersey number already taken for this team")

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, onlyActive bool) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) (Player, error)
	Deactivate(ctx context.Context, playerID string) error
	// ApplyAppearance adds one appearance plus the given counter deltas to
	// the player's career stats as a single atomic increment in storage.
	ApplyAppearance(ctx context.Context, delta AppearanceDelta) error
}
