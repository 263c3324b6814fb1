package team

import (
	"testing"
	"time"
)

func TestSeasonRecord_ApplyResult(t *testing.T) {
	record := SeasonRecord{}

	record, err := record.ApplyResult(2, 1, OutcomeWin)
	if err != nil {
		t.Fatalf("apply win: %v", err)
	}
	want := SeasonRecord{MatchesPlayed: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, Points: 3}
	if record != want {
		t.Fatalf("after win: got %+v want %+v", record, want)
	}

	record, err = record.ApplyResult(1, 1, OutcomeDraw)
	if err != nil {
		t.Fatalf("apply draw: %v", err)
	}
	want = SeasonRecord{MatchesPlayed: 2, Wins: 1, Draws: 1, GoalsFor: 3, GoalsAgainst: 2, Points: 4}
	if record != want {
		t.Fatalf("after draw: got %+v want %+v", record, want)
	}

	record, err = record.ApplyResult(0, 3, OutcomeLoss)
	if err != nil {
		t.Fatalf("apply loss: %v", err)
	}
	want = SeasonRecord{MatchesPlayed: 3, Wins: 1, Draws: 1, Losses: 1, GoalsFor: 3, GoalsAgainst: 5, Points: 4}
	if record != want {
		t.Fatalf("after loss: got %+v want %+v", record, want)
	}
}

func TestSeasonRecord_ApplyResult_Invalid(t *testing.T) {
	record := SeasonRecord{}

	if _, err := record.ApplyResult(-1, 0, OutcomeWin); err == nil {
		t.Fatalf("expected error for negative goals")
	}
	if _, err := record.ApplyResult(1, 0, MatchOutcome("forfeit")); err == nil {
		t.Fatalf("expected error for unknown outcome")
	}
}

func TestSeasonRecord_GoalDifference(t *testing.T) {
	positive := SeasonRecord{GoalsFor: 10, GoalsAgainst: 4}
	if got := positive.GoalDifference(); got != 6 {
		t.Fatalf("expected +6, got %d", got)
	}

	negative := SeasonRecord{GoalsFor: 2, GoalsAgainst: 7}
	if got := negative.GoalDifference(); got != -5 {
		t.Fatalf("expected -5, got %d", got)
	}
}

func TestMatchOutcome_Points(t *testing.T) {
	if got := OutcomeWin.Points(); got != 3 {
		t.Fatalf("win: expected 3 points, got %d", got)
	}
	if got := OutcomeDraw.Points(); got != 1 {
		t.Fatalf("draw: expected 1 point, got %d", got)
	}
	if got := OutcomeLoss.Points(); got != 0 {
		t.Fatalf("loss: expected 0 points, got %d", got)
	}
}

func TestTeam_Validate(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	valid := Team{
		Name:        "Enugu Rangers",
		ShortName:   "RAN",
		State:       StateEnugu,
		FoundedYear: 1970,
	}

	t.Run("valid", func(t *testing.T) {
		if err := valid.Validate(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("short name too long", func(t *testing.T) {
		item := valid
		item.ShortName = "RANGERS"
		if err := item.Validate(now); err == nil {
			t.Fatalf("expected error for long short name")
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		item := valid
		item.State = State("Atlantis")
		if err := item.Validate(now); err == nil {
			t.Fatalf("expected error for unknown state")
		}
	})

	t.Run("founded year in the future", func(t *testing.T) {
		item := valid
		item.FoundedYear = now.Year() + 1
		if err := item.Validate(now); err == nil {
			t.Fatalf("expected error for future founded year")
		}
	})

	t.Run("founded year before minimum", func(t *testing.T) {
		item := valid
		item.FoundedYear = 1899
		if err := item.Validate(now); err == nil {
			t.Fatalf("expected error for founded year before %d", MinFoundedYear)
		}
	})
}
