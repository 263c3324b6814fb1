package main

import (
	"strings"
	"testing"
)

func TestRollbackSteps(t *testing.T) {
	t.Run("defaults to one step", func(t *testing.T) {
		steps, err := rollbackSteps(nil)
		if err != nil {
			t.Fatalf("rollbackSteps: %v", err)
		}
		if steps != 1 {
			t.Fatalf("expected 1 step, got %d", steps)
		}
	})

	t.Run("parses explicit count", func(t *testing.T) {
		steps, err := rollbackSteps([]string{" 3 "})
		if err != nil {
			t.Fatalf("rollbackSteps: %v", err)
		}
		if steps != 3 {
			t.Fatalf("expected 3 steps, got %d", steps)
		}
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		if _, err := rollbackSteps([]string{"0"}); err == nil {
			t.Fatalf("expected error for zero steps")
		}
		if _, err := rollbackSteps([]string{"-2"}); err == nil {
			t.Fatalf("expected error for negative steps")
		}
	})
}

func TestForceVersion(t *testing.T) {
	version, err := forceVersion([]string{"4"})
	if err != nil {
		t.Fatalf("forceVersion: %v", err)
	}
	if version != 4 {
		t.Fatalf("expected version 4, got %d", version)
	}

	if _, err := forceVersion(nil); err == nil {
		t.Fatalf("expected error when version is missing")
	}
	if _, err := forceVersion([]string{"-1"}); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if _, err := forceVersion([]string{"latest"}); err == nil {
		t.Fatalf("expected error for non-numeric version")
	}
}

func TestMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", dir)

	got, err := migrationsDir()
	if err != nil {
		t.Fatalf("migrationsDir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}
}

func TestWithPreparedBinaryFlag(t *testing.T) {
	raw := "postgres://localhost:5432/goalzone?sslmode=disable"

	t.Run("disabled passes through", func(t *testing.T) {
		if got := withPreparedBinaryFlag(raw, false); got != raw {
			t.Fatalf("expected unchanged url, got %s", got)
		}
	})

	t.Run("enabled adds flag", func(t *testing.T) {
		got := withPreparedBinaryFlag(raw, true)
		if !strings.Contains(got, "disable_prepared_binary_result=yes") {
			t.Fatalf("expected flag in url, got %s", got)
		}
	})

	t.Run("explicit value wins", func(t *testing.T) {
		got := withPreparedBinaryFlag("postgres://localhost/goalzone?disable_prepared_binary_result=no", true)
		if !strings.Contains(got, "disable_prepared_binary_result=no") {
			t.Fatalf("explicit value was overwritten: %s", got)
		}
	})
}
