package match

import (
	"context"
	"time"
)

// Filter narrows match listings.
type Filter struct {
	Status   Status
	Matchday int
	TeamID   string
	From     time.Time
	To       time.Time
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	Update(ctx context.Context, item Match) (Match, error)
	// Complete transitions a match to completed with its final score. It
	// fails when the match is already completed so a result cannot be
	// double-counted.
	Complete(ctx context.Context, matchID string, homeScore, awayScore int) (Match, error)
}
