package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
	idgen "github.com/goalzone-ng/goalzone-api/internal/platform/id"
)

// TeamService owns team CRUD and the squad read model. A team's squad is
// always derived by querying players whose TeamID points at the team.
type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        idgen.Generator
	now        func() time.Time
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository, ids idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
		now:        time.Now,
	}
}

func (s *TeamService) ListTeams(ctx context.Context, onlyActive bool) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) GetTeamByID(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamByID")
	defer span.End()

	return s.getTeam(ctx, teamID)
}

// GetSquad lists the players owned by the team, in jersey-number order.
func (s *TeamService) GetSquad(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetSquad")
	defer span.End()

	if _, err := s.getTeam(ctx, teamID); err != nil {
		return nil, err
	}

	squad, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list squad players: %w", err)
	}

	return squad, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	item = normalizeTeam(item)
	if err := item.Validate(s.now()); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}
	item.ID = newID
	item.IsActive = true
	item.Stats = team.SeasonRecord{}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return created, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	existing, err := s.getTeam(ctx, item.ID)
	if err != nil {
		return team.Team{}, err
	}

	item = normalizeTeam(item)
	if err := item.Validate(s.now()); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Season counters only move through result recording.
	item.Stats = existing.Stats
	item.IsActive = existing.IsActive

	updated, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return updated, nil
}

// DeactivateTeam soft-deletes: the record survives for history and squad
// references, it just stops appearing in active listings.
func (s *TeamService) DeactivateTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeactivateTeam")
	defer span.End()

	if _, err := s.getTeam(ctx, teamID); err != nil {
		return err
	}

	if err := s.teamRepo.Deactivate(ctx, teamID); err != nil {
		return fmt.Errorf("deactivate team: %w", err)
	}

	return nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func normalizeTeam(item team.Team) team.Team {
	item.Name = strings.TrimSpace(item.Name)
	item.ShortName = strings.TrimSpace(item.ShortName)
	item.CaptainID = strings.TrimSpace(item.CaptainID)
	return item
}
