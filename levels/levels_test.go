package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedTable(t *testing.T) {
	table, err := Load()
	if err != nil {
		t.Fatalf("load embedded table: %v", err)
	}

	wantNames := []string{"Simple jumps", "Higher jumps", "Precision jumps", "Variable heights", "Final challenge"}
	if table.Len() != len(wantNames) {
		t.Fatalf("expected %d levels, got %d", len(wantNames), table.Len())
	}
	for i, name := range wantNames {
		if table.Levels[i].Name != name {
			t.Fatalf("level %d: expected %q, got %q", i, name, table.Levels[i].Name)
		}
	}

	first := table.Level(0)
	if len(first.Platforms) != 5 {
		t.Fatalf("expected 5 platforms on level 0, got %d", len(first.Platforms))
	}
	if p := first.Platforms[1]; p.X != 200 || p.Y != 450 || p.Width != 100 || p.Height != 20 {
		t.Fatalf("unexpected platform %+v", p)
	}
}

func TestSpawnAndGoal(t *testing.T) {
	table := MustLoad()

	x, y := table.Level(0).Spawn()
	if x != 100 || y != 470 {
		t.Fatalf("expected spawn (100, 470), got (%v, %v)", x, y)
	}
	if got := table.Level(0).GoalX(); got != 700 {
		t.Fatalf("expected goal column 700, got %v", got)
	}
	if got := table.Level(1).GoalX(); got != 700 {
		t.Fatalf("expected goal column 700 on level 1, got %v", got)
	}
	if got := table.Level(3).GoalX(); got != 800 {
		t.Fatalf("expected goal column 800 on level 3, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	table := MustLoad()
	tests := []struct {
		in, want int
	}{
		{-1, 0},
		{0, 0},
		{4, 4},
		{9, 4},
	}
	for _, tc := range tests {
		if got := table.Clamp(tc.in); got != tc.want {
			t.Fatalf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if table.Level(7).Name != "Final challenge" {
		t.Fatalf("expected out of range level to clamp to the last level")
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"empty_table", "levels: []\n", ErrEmptyTable},
		{"empty_level", "levels:\n  - name: nothing\n    platforms: []\n", ErrEmptyLevel},
		{"ok", "levels:\n  - name: one\n    platforms:\n      - {x: 0, y: 10, width: 5, height: 5}\n", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if _, err := Parse([]byte("levels:\n  - name: bad\n    platforms:\n      - {x: 0, y: 0, width: 0, height: 5}\n")); err == nil {
		t.Fatal("expected zero-width platform to be rejected")
	}
	if _, err := Parse([]byte("levels: [")); err == nil {
		t.Fatal("expected malformed yaml to fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	src := "levels:\n  - name: flat\n    platforms:\n      - {x: 0, y: 500, width: 800, height: 20}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if table.Len() != 1 || table.Levels[0].Name != "flat" {
		t.Fatalf("unexpected table %+v", table)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	if err := os.WriteFile(path, []byte("levels: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("levels: []\n# edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		abs, _ := filepath.Abs(path)
		if got != abs {
			t.Fatalf("expected event for %s, got %s", abs, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}
