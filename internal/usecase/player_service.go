package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
	idgen "github.com/goalzone-ng/goalzone-api/internal/platform/id"
)

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        idgen.Generator
}

func NewPlayerService(teamRepo team.Repository, playerRepo player.Repository, ids idgen.Generator) *PlayerService {
	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, onlyActive bool) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerByID")
	defer span.End()

	return s.getPlayer(ctx, playerID)
}

func (s *PlayerService) CreatePlayer(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	item = normalizePlayer(item)
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.requireTeam(ctx, item.TeamID); err != nil {
		return player.Player{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	item.ID = newID
	item.IsActive = true
	item.Stats = player.CareerStats{}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, player.ErrJerseyTaken) {
			return player.Player{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	existing, err := s.getPlayer(ctx, item.ID)
	if err != nil {
		return player.Player{}, err
	}

	item = normalizePlayer(item)
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if item.TeamID != existing.TeamID {
		if err := s.requireTeam(ctx, item.TeamID); err != nil {
			return player.Player{}, err
		}
	}

	// Career counters only move through result recording.
	item.Stats = existing.Stats
	item.IsActive = existing.IsActive

	updated, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, player.ErrJerseyTaken) {
			return player.Player{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return updated, nil
}

func (s *PlayerService) DeactivatePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeactivatePlayer")
	defer span.End()

	if _, err := s.getPlayer(ctx, playerID); err != nil {
		return err
	}

	if err := s.playerRepo.Deactivate(ctx, playerID); err != nil {
		return fmt.Errorf("deactivate player: %w", err)
	}

	return nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) requireTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}

func normalizePlayer(item player.Player) player.Player {
	item.FirstName = strings.TrimSpace(item.FirstName)
	item.LastName = strings.TrimSpace(item.LastName)
	item.Nationality = strings.TrimSpace(item.Nationality)
	item.TeamID = strings.TrimSpace(item.TeamID)
	return item
}
