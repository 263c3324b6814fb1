package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
	"github.com/goalzone-ng/goalzone-api/internal/infrastructure/repository/memory"
	idgen "github.com/goalzone-ng/goalzone-api/internal/platform/id"
)

func newPlayerFixtureService() (*PlayerService, *memory.PlayerRepository) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-a", Name: "Team A", ShortName: "TMA", State: team.StateLagos, IsActive: true},
	})
	playerRepo := memory.NewPlayerRepository(nil)

	return NewPlayerService(teamRepo, playerRepo, idgen.NewRandomGenerator()), playerRepo
}

func newSignablePlayer(jersey int) player.Player {
	return player.Player{
		TeamID:       "team-a",
		FirstName:    "Chidi",
		LastName:     "Eze",
		JerseyNumber: jersey,
		Position:     player.PositionCentralMidfield,
		Nationality:  "Nigeria",
		DateOfBirth:  time.Date(2001, time.February, 11, 0, 0, 0, 0, time.UTC),
	}
}

func TestPlayerService_CreatePlayer_JerseyConflict(t *testing.T) {
	ctx := context.Background()
	service, _ := newPlayerFixtureService()

	if _, err := service.CreatePlayer(ctx, newSignablePlayer(8)); err != nil {
		t.Fatalf("first signing: %v", err)
	}

	_, err := service.CreatePlayer(ctx, newSignablePlayer(8))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	// The jersey-specific sentinel survives the wrap so the API can report
	// the precise reason.
	if !errors.Is(err, player.ErrJerseyTaken) {
		t.Fatalf("expected ErrJerseyTaken in chain, got %v", err)
	}
}

func TestPlayerService_CreatePlayer_UnknownTeam(t *testing.T) {
	service, _ := newPlayerFixtureService()

	item := newSignablePlayer(8)
	item.TeamID = "team-ghost"
	_, err := service.CreatePlayer(context.Background(), item)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_CreatePlayer_ResetsCounters(t *testing.T) {
	ctx := context.Background()
	service, _ := newPlayerFixtureService()

	item := newSignablePlayer(8)
	item.Stats = player.CareerStats{Goals: 99}
	created, err := service.CreatePlayer(ctx, item)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Stats != (player.CareerStats{}) {
		t.Fatalf("career counters must start at zero, got %+v", created.Stats)
	}
	if !created.IsActive {
		t.Fatalf("new players must be active")
	}
}

func TestPlayerService_UpdatePlayer_PreservesStats(t *testing.T) {
	ctx := context.Background()
	service, playerRepo := newPlayerFixtureService()

	created, err := service.CreatePlayer(ctx, newSignablePlayer(8))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := playerRepo.ApplyAppearance(ctx, player.AppearanceDelta{PlayerID: created.ID, Goals: 3, MinutesPlayed: 90}); err != nil {
		t.Fatalf("seed appearance: %v", err)
	}

	edit := created
	edit.Bio = "Club captain"
	edit.Stats = player.CareerStats{}
	updated, err := service.UpdatePlayer(ctx, edit)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Stats.Goals != 3 || updated.Stats.Appearances != 1 {
		t.Fatalf("edit must not reset career counters, got %+v", updated.Stats)
	}
}
