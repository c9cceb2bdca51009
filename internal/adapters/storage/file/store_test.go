package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"petty-marketplace/internal/ports/statestore"
)

func TestStore_LoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "petty_state.json"))

	_, err := s.Load(context.Background())
	if !errors.Is(err, statestore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "petty_state.json")
	s := NewStore(path)

	blob := []byte(`{"owners":[]}`)
	if err := s.Save(context.Background(), blob); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("round trip mismatch: %s", string(got))
	}

	// el write es tmp+rename: no deben quedar temporales
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the state file, got %d entries", len(entries))
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "petty_state.json"))
	ctx := context.Background()

	if err := s.Save(ctx, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Save #1: %v", err)
	}
	if err := s.Save(ctx, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("Save #2: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Fatalf("expected last write to win, got %s", string(got))
	}
}
