package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	t.Run("basic select with conditions", func(t *testing.T) {
		sql, args, err := Select("public_id", "name").
			From("teams").
			Where(Eq("is_active", true), IsNull("deleted_at")).
			OrderBy("name ASC").
			Limit(20).
			Offset(40).
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL: %v", err)
		}

		want := "SELECT public_id, name FROM teams WHERE is_active = $1 AND deleted_at IS NULL ORDER BY name ASC LIMIT 20 OFFSET 40"
		if sql != want {
			t.Fatalf("sql mismatch:\n got %s\nwant %s", sql, want)
		}
		if !reflect.DeepEqual(args, []any{true}) {
			t.Fatalf("args mismatch: %v", args)
		}
	})

	t.Run("in condition numbers placeholders", func(t *testing.T) {
		sql, args, err := Select("public_id").
			From("matches").
			Where(Eq("status", "completed"), In("home_team_public_id", []any{"team-a", "team-b"})).
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL: %v", err)
		}

		want := "SELECT public_id FROM matches WHERE status = $1 AND home_team_public_id IN ($2, $3)"
		if sql != want {
			t.Fatalf("sql mismatch:\n got %s\nwant %s", sql, want)
		}
		if !reflect.DeepEqual(args, []any{"completed", "team-a", "team-b"}) {
			t.Fatalf("args mismatch: %v", args)
		}
	})

	t.Run("empty in renders false predicate", func(t *testing.T) {
		sql, args, err := Select("public_id").
			From("players").
			Where(In("team_public_id", nil)).
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL: %v", err)
		}
		if sql != "SELECT public_id FROM players WHERE 1=0" {
			t.Fatalf("sql mismatch: %s", sql)
		}
		if len(args) != 0 {
			t.Fatalf("expected no args, got %v", args)
		}
	})

	t.Run("expr condition rewrites question marks", func(t *testing.T) {
		sql, args, err := Select("public_id").
			From("news_articles").
			Where(Expr("tags @> ?", "{transfers}"), Eq("published", true)).
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL: %v", err)
		}
		if sql != "SELECT public_id FROM news_articles WHERE tags @> $1 AND published = $2" {
			t.Fatalf("sql mismatch: %s", sql)
		}
		if !reflect.DeepEqual(args, []any{"{transfers}", true}) {
			t.Fatalf("args mismatch: %v", args)
		}
	})

	t.Run("missing table fails", func(t *testing.T) {
		if _, _, err := Select("id").ToSQL(); err == nil {
			t.Fatalf("expected error for missing table")
		}
	})
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	t.Run("multi row insert with suffix", func(t *testing.T) {
		sql, args, err := InsertInto("players").
			Columns("public_id", "jersey_number").
			Values("ply-a", 9).
			Values("ply-b", 10).
			Suffix("RETURNING id").
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL: %v", err)
		}
		if sql != "INSERT INTO players (public_id, jersey_number) VALUES ($1, $2), ($3, $4) RETURNING id" {
			t.Fatalf("sql mismatch: %s", sql)
		}
		if !reflect.DeepEqual(args, []any{"ply-a", 9, "ply-b", 10}) {
			t.Fatalf("args mismatch: %v", args)
		}
	})

	t.Run("row width mismatch fails", func(t *testing.T) {
		_, _, err := InsertInto("players").
			Columns("public_id", "jersey_number").
			Values("ply-a").
			ToSQL()
		if err == nil {
			t.Fatalf("expected error for short row")
		}
	})
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	t.Run("self referential counters", func(t *testing.T) {
		sql, args, err := Update("teams").
			SetExpr("wins", "wins + ?", 1).
			SetExpr("goals_for", "goals_for + ?", 2).
			Set("updated_at", "now").
			Where(Eq("public_id", "team-a")).
			ToSQL()
		if err != nil {
			t.Fatalf("ToSQL: %v", err)
		}
		if sql != "UPDATE teams SET wins = wins + $1, goals_for = goals_for + $2, updated_at = $3 WHERE public_id = $4" {
			t.Fatalf("sql mismatch: %s", sql)
		}
		if !reflect.DeepEqual(args, []any{1, 2, "now", "team-a"}) {
			t.Fatalf("args mismatch: %v", args)
		}
	})

	t.Run("no sets fails", func(t *testing.T) {
		if _, _, err := Update("teams").Where(Eq("public_id", "x")).ToSQL(); err == nil {
			t.Fatalf("expected error for empty set list")
		}
	})
}
