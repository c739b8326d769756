package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := Open(KindFile, filepath.Join(dir, "nested", "storage.json"))
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	db, err := Open(KindSQLite, filepath.Join(dir, "storage.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	mem, err := Open(KindMemory, "")
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	return map[string]Store{"file": file, "sqlite": db, "memory": mem}
}

func TestStoreContract(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get("gameState"); err != nil || ok {
				t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
			}

			if err := s.Set("gameState", `{"level":1}`); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set("gameState", `{"level":2}`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			v, ok, err := s.Get("gameState")
			if err != nil || !ok || v != `{"level":2}` {
				t.Fatalf("expected overwritten value, got %q ok=%v err=%v", v, ok, err)
			}

			if err := s.Delete("gameState"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, ok, _ := s.Get("gameState"); ok {
				t.Fatal("expected key to be gone after delete")
			}
			if err := s.Delete("never-set"); err != nil {
				t.Fatalf("delete missing key: %v", err)
			}

			if err := s.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}
			if err := s.Set("k", "v"); !errors.Is(err, ErrClosed) {
				t.Fatalf("expected ErrClosed after close, got %v", err)
			}
		})
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	for _, kind := range []Kind{KindFile, KindSQLite} {
		t.Run(string(kind), func(t *testing.T) {
			path := filepath.Join(dir, "reopen-"+string(kind))
			s, err := Open(kind, path)
			if err != nil {
				t.Fatal(err)
			}
			if err := s.Set("gameState", "saved"); err != nil {
				t.Fatal(err)
			}
			if err := s.Close(); err != nil {
				t.Fatal(err)
			}

			s, err = Open(kind, path)
			if err != nil {
				t.Fatal(err)
			}
			defer s.Close()
			v, ok, err := s.Get("gameState")
			if err != nil || !ok || v != "saved" {
				t.Fatalf("expected saved value after reopen, got %q ok=%v err=%v", v, ok, err)
			}
		})
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatal("expected corrupt store file to fail")
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open(Kind("redis"), ""); err == nil {
		t.Fatal("expected unknown kind to fail")
	}
}
