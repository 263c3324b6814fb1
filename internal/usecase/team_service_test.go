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

func newTeamFixtureService() (*TeamService, *memory.TeamRepository) {
	teamRepo := memory.NewTeamRepository([]team.Team{
		{
			ID: "team-a", Name: "Team A", ShortName: "TMA", State: team.StateLagos, IsActive: true,
			Stats: team.SeasonRecord{MatchesPlayed: 3, Wins: 2, Draws: 1, GoalsFor: 5, GoalsAgainst: 2, Points: 7},
		},
	})
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "ply-1", TeamID: "team-a", FirstName: "Sani", LastName: "Abdul", JerseyNumber: 1, Position: player.PositionGoalkeeper, IsActive: true},
		{ID: "ply-2", TeamID: "team-a", FirstName: "Kelechi", LastName: "Nwosu", JerseyNumber: 9, Position: player.PositionStriker, IsActive: true},
		{ID: "ply-3", TeamID: "team-b", FirstName: "Tunde", LastName: "Bello", JerseyNumber: 7, Position: player.PositionRightWinger, IsActive: true},
	})

	return NewTeamService(teamRepo, playerRepo, idgen.NewRandomGenerator()), teamRepo
}

func TestTeamService_CreateTeam(t *testing.T) {
	ctx := context.Background()
	service, _ := newTeamFixtureService()

	created, err := service.CreateTeam(ctx, team.Team{
		Name:        "  Abia Warriors ",
		ShortName:   "ABW",
		State:       team.StateAbia,
		FoundedYear: 2001,
		Stats:       team.SeasonRecord{Points: 99},
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Name != "Abia Warriors" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if !created.IsActive {
		t.Fatalf("new team must be active")
	}
	if created.Stats != (team.SeasonRecord{}) {
		t.Fatalf("new team must start with a zero season record, got %+v", created.Stats)
	}
}

func TestTeamService_CreateTeam_Invalid(t *testing.T) {
	ctx := context.Background()
	service, _ := newTeamFixtureService()

	cases := []struct {
		name string
		item team.Team
	}{
		{name: "missing name", item: team.Team{ShortName: "X", State: team.StateLagos}},
		{name: "long short name", item: team.Team{Name: "X", ShortName: "TOOLONG", State: team.StateLagos}},
		{name: "unknown state", item: team.Team{Name: "X", ShortName: "X", State: "Atlantis"}},
		{name: "future founded year", item: team.Team{Name: "X", ShortName: "X", State: team.StateLagos, FoundedYear: time.Now().Year() + 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.CreateTeam(ctx, tc.item); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestTeamService_UpdateTeam_PreservesRecord(t *testing.T) {
	ctx := context.Background()
	service, _ := newTeamFixtureService()

	updated, err := service.UpdateTeam(ctx, team.Team{
		ID:        "team-a",
		Name:      "Team A Renamed",
		ShortName: "TMA",
		State:     team.StateLagos,
		Stats:     team.SeasonRecord{},
	})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}

	if updated.Name != "Team A Renamed" {
		t.Fatalf("expected renamed team, got %q", updated.Name)
	}
	if updated.Stats.Points != 7 || updated.Stats.MatchesPlayed != 3 {
		t.Fatalf("season record must survive profile updates, got %+v", updated.Stats)
	}
}

func TestTeamService_UpdateTeam_NotFound(t *testing.T) {
	ctx := context.Background()
	service, _ := newTeamFixtureService()

	_, err := service.UpdateTeam(ctx, team.Team{ID: "team-ghost", Name: "X", ShortName: "X", State: team.StateLagos})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_GetSquad(t *testing.T) {
	ctx := context.Background()
	service, _ := newTeamFixtureService()

	squad, err := service.GetSquad(ctx, "team-a")
	if err != nil {
		t.Fatalf("get squad: %v", err)
	}
	if len(squad) != 2 {
		t.Fatalf("expected 2 players in squad, got %d", len(squad))
	}
	for _, member := range squad {
		if member.TeamID != "team-a" {
			t.Fatalf("squad member %s belongs to %s", member.ID, member.TeamID)
		}
	}
}

func TestTeamService_GetSquad_UnknownTeam(t *testing.T) {
	ctx := context.Background()
	service, _ := newTeamFixtureService()

	if _, err := service.GetSquad(ctx, "team-ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_DeactivateTeam(t *testing.T) {
	ctx := context.Background()
	service, _ := newTeamFixtureService()

	if err := service.DeactivateTeam(ctx, "team-a"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := service.ListTeams(ctx, true)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active teams, got %d", len(active))
	}

	// The record itself survives for history.
	got, err := service.GetTeamByID(ctx, "team-a")
	if err != nil {
		t.Fatalf("get deactivated team: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected team to be inactive")
	}
}
