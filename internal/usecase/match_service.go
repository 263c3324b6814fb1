package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/goalzone-ng/goalzone-api/internal/domain/match"
	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
	idgen "github.com/goalzone-ng/goalzone-api/internal/platform/id"
	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
)

type MatchService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        idgen.Generator
	logger     *logging.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	ids idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
		logger:     logger,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	if filter.Status != "" {
		if _, ok := match.AllStatuses[filter.Status]; !ok {
			return nil, fmt.Errorf("%w: invalid status filter %q", ErrInvalidInput, filter.Status)
		}
	}

	matches, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

func (s *MatchService) GetMatchByID(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatchByID")
	defer span.End()

	return s.getMatch(ctx, matchID)
}

func (s *MatchService) CreateMatch(ctx context.Context, item match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	if item.Status == "" {
		item.Status = match.StatusScheduled
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, teamID := range []string{item.HomeTeamID, item.AwayTeamID} {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	item.ID = newID

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return created, nil
}

func (s *MatchService) UpdateMatch(ctx context.Context, item match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	existing, err := s.getMatch(ctx, item.ID)
	if err != nil {
		return match.Match{}, err
	}
	if existing.Status == match.StatusCompleted {
		return match.Match{}, fmt.Errorf("%w: completed match cannot be edited", ErrConflict)
	}

	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.matchRepo.Update(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	return updated, nil
}

// RecordResult finalizes a match: the fixture flips to completed, both
// teams' season counters advance by atomic per-counter deltas, and each
// listed player's career stats absorb their appearance.
//
// The team writes and the player writes are independent; if any write
// fails after the match was completed the error is surfaced so the caller
// can retry, never reported as success. Completing the match first makes
// a duplicate submission fail fast instead of double-counting.
func (s *MatchService) RecordResult(ctx context.Context, matchID string, result match.Result) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	if err := result.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if existing.Status == match.StatusCompleted {
		return match.Match{}, fmt.Errorf("%w: result already recorded for match=%s", ErrConflict, matchID)
	}

	completed, err := s.matchRepo.Complete(ctx, matchID, result.HomeScore, result.AwayScore)
	if err != nil {
		return match.Match{}, fmt.Errorf("complete match: %w", err)
	}

	homeOutcome, awayOutcome := result.Outcomes()

	homeDelta, err := team.DeltaForResult(result.HomeScore, result.AwayScore, homeOutcome)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	awayDelta, err := team.DeltaForResult(result.AwayScore, result.HomeScore, awayOutcome)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.ApplyResultDelta(ctx, completed.HomeTeamID, homeDelta); err != nil {
		return match.Match{}, fmt.Errorf("apply home team result: %w", err)
	}
	if err := s.teamRepo.ApplyResultDelta(ctx, completed.AwayTeamID, awayDelta); err != nil {
		return match.Match{}, fmt.Errorf("apply away team result: %w", err)
	}

	if err := s.applyAppearances(ctx, completed.ID, result.Appearances); err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", completed.ID,
		"home_team_id", completed.HomeTeamID,
		"away_team_id", completed.AwayTeamID,
		"score", fmt.Sprintf("%d:%d", result.HomeScore, result.AwayScore),
		"appearances", len(result.Appearances),
	)

	return completed, nil
}

func (s *MatchService) applyAppearances(ctx context.Context, matchID string, deltas []player.AppearanceDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(4)
	for _, delta := range deltas {
		delta := delta
		p.Go(func(ctx context.Context) error {
			if err := s.playerRepo.ApplyAppearance(ctx, delta); err != nil {
				s.logger.ErrorContext(ctx, "apply player appearance failed",
					"match_id", matchID,
					"player_id", delta.PlayerID,
					"error", err,
				)
				return fmt.Errorf("apply appearance for player %s: %w", delta.PlayerID, err)
			}
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}

	return nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}
