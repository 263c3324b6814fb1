package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, onlyActive bool) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) (Team, error)
	Deactivate(ctx context.Context, teamID string) error
	// ApplyResultDelta advances the season counters by one match result.
	// Implementations must persist the increment atomically; the counters
	// are never read, mutated in memory and written back as a whole row.
	ApplyResultDelta(ctx context.Context, teamID string, delta ResultDelta) error
}
