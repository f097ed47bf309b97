package memory

import (
	"path/filepath"
	"testing"
)

func TestSQLiteBackend_SaveLoad(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewSQLiteBackend(filepath.Join(dir, "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()

	entries := []Entry{
		{Level: "global", Key: "locale", Value: "en"},
		{Level: "session", Key: "mood", Value: "happy"},
		{Level: "user", Key: "name", Value: "Ada"},
	}
	if err := backend.Save(entries); err != nil {
		t.Fatal(err)
	}

	loaded, err := backend.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(loaded))
	}
	for i := range entries {
		if loaded[i] != entries[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, entries[i], loaded[i])
		}
	}
}

func TestSQLiteBackend_SaveReplacesSnapshot(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewSQLiteBackend(filepath.Join(dir, "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()

	backend.Save([]Entry{
		{Level: "session", Key: "mood", Value: "happy"},
		{Level: "session", Key: "topic", Value: "weather"},
	})
	backend.Save([]Entry{
		{Level: "session", Key: "mood", Value: "tired"},
	})

	loaded, err := backend.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected replacement snapshot with 1 entry, got %d", len(loaded))
	}
	if loaded[0].Value != "tired" {
		t.Errorf("expected tired, got %q", loaded[0].Value)
	}
}

func TestSQLiteBackend_EmptySnapshot(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewSQLiteBackend(filepath.Join(dir, "memory.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()

	loaded, err := backend.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty snapshot, got %d entries", len(loaded))
	}
}

func TestSQLiteBackend_PersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "memory.db")

	first, err := NewSQLiteBackend(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Save([]Entry{{Level: "user", Key: "name", Value: "Ada"}}); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second, err := NewSQLiteBackend(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	loaded, err := second.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].Value != "Ada" {
		t.Errorf("expected persisted entry, got %+v", loaded)
	}
}
