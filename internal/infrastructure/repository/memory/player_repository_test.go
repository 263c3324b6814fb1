package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
)

func testPlayer(id, teamID string, jersey int) player.Player {
	return player.Player{
		ID:           id,
		TeamID:       teamID,
		FirstName:    "Test",
		LastName:     "Player",
		JerseyNumber: jersey,
		Position:     player.PositionStriker,
		Nationality:  "Nigeria",
		DateOfBirth:  time.Date(1998, time.June, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}

func TestPlayerRepository_Create_JerseyTaken(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository([]player.Player{testPlayer("ply-1", "team-a", 10)})

	_, err := repo.Create(ctx, testPlayer("ply-2", "team-a", 10))
	if !errors.Is(err, player.ErrJerseyTaken) {
		t.Fatalf("expected ErrJerseyTaken, got %v", err)
	}

	// The same number on another team is fine.
	if _, err := repo.Create(ctx, testPlayer("ply-3", "team-b", 10)); err != nil {
		t.Fatalf("create on another team: %v", err)
	}
}

func TestPlayerRepository_Update_ReleasesOldJersey(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository([]player.Player{testPlayer("ply-1", "team-a", 10)})

	moved := testPlayer("ply-1", "team-a", 7)
	if _, err := repo.Update(ctx, moved); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Number 10 is free again after the change.
	if _, err := repo.Create(ctx, testPlayer("ply-2", "team-a", 10)); err != nil {
		t.Fatalf("expected jersey 10 to be released, got %v", err)
	}
}

func TestPlayerRepository_Update_JerseyTaken(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository([]player.Player{
		testPlayer("ply-1", "team-a", 10),
		testPlayer("ply-2", "team-a", 7),
	})

	clash := testPlayer("ply-2", "team-a", 10)
	if _, err := repo.Update(ctx, clash); !errors.Is(err, player.ErrJerseyTaken) {
		t.Fatalf("expected ErrJerseyTaken, got %v", err)
	}
}

func TestPlayerRepository_ApplyAppearance(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository([]player.Player{testPlayer("ply-1", "team-a", 10)})

	err := repo.ApplyAppearance(ctx, player.AppearanceDelta{
		PlayerID:      "ply-1",
		Goals:         2,
		MinutesPlayed: 90,
	})
	if err != nil {
		t.Fatalf("apply appearance: %v", err)
	}

	item, ok, err := repo.GetByID(ctx, "ply-1")
	if err != nil || !ok {
		t.Fatalf("get player: ok=%v err=%v", ok, err)
	}
	if item.Stats.Appearances != 1 || item.Stats.Goals != 2 || item.Stats.MinutesPlayed != 90 {
		t.Fatalf("unexpected stats: %+v", item.Stats)
	}
}

func TestPlayerRepository_ListByTeam_SkipsInactive(t *testing.T) {
	ctx := context.Background()
	inactive := testPlayer("ply-2", "team-a", 7)
	inactive.IsActive = false
	repo := NewPlayerRepository([]player.Player{
		testPlayer("ply-1", "team-a", 10),
		inactive,
	})

	got, err := repo.ListByTeam(ctx, "team-a")
	if err != nil {
		t.Fatalf("list by team: %v", err)
	}
	if len(got) != 1 || got[0].ID != "ply-1" {
		t.Fatalf("unexpected squad: %+v", got)
	}
}
