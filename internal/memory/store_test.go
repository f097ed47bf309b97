package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	sallieerr "github.com/sallie-oss/sallie/internal/errors"
)

func TestStore_InsertLookup(t *testing.T) {
	s := NewStore()

	if err := s.Insert("session", "mood", "happy"); err != nil {
		t.Fatal(err)
	}

	got, err := s.Lookup("session", "mood")
	if err != nil {
		t.Fatal(err)
	}
	if got != "happy" {
		t.Errorf("expected %q, got %q", "happy", got)
	}
}

func TestStore_LookupAbsent(t *testing.T) {
	s := NewStore()

	if _, err := s.Lookup("session", "never-inserted"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Lookup alone must not create a root.
	if levels := s.Levels(); len(levels) != 0 {
		t.Errorf("lookup created roots: %v", levels)
	}
}

func TestStore_InsertEmptyIdentifiers(t *testing.T) {
	s := NewStore()

	if err := s.Insert("", "key", "v"); sallieerr.AsCode(err) != sallieerr.CodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT for empty level, got %v", err)
	}
	if err := s.Insert("level", "", "v"); sallieerr.AsCode(err) != sallieerr.CodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT for empty key, got %v", err)
	}
	// An empty value is fine.
	if err := s.Insert("level", "key", ""); err != nil {
		t.Errorf("empty value should be accepted: %v", err)
	}
}

func TestStore_Overwrite(t *testing.T) {
	s := NewStore()

	s.Insert("user", "name", "Ada")
	s.Insert("user", "name", "Grace")

	got, err := s.Lookup("user", "name")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Grace" {
		t.Errorf("expected overwrite to win, got %q", got)
	}
	if s.Len() != 1 {
		t.Errorf("overwrite must not add entries, len = %d", s.Len())
	}
}

func TestStore_LevelIsolation(t *testing.T) {
	s := NewStore()

	s.Insert("A", "k", "v")

	if _, err := s.Lookup("B", "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound in unrelated level, got %v", err)
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()

	s.Insert("session", "topic", "weather")

	if !s.Remove("session", "topic") {
		t.Fatal("expected Remove to report a removal")
	}
	if _, err := s.Lookup("session", "topic"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after removal, got %v", err)
	}
	if s.Remove("session", "topic") {
		t.Error("second Remove should be a no-op")
	}
	if s.Remove("no-such-level", "topic") {
		t.Error("Remove on unknown level should be a no-op")
	}
}

func TestStore_Snapshot_SortedDeterministic(t *testing.T) {
	s := NewStore()

	s.Insert("user", "name", "Ada")
	s.Insert("global", "version", "1")
	s.Insert("session", "mood", "happy")
	s.Insert("global", "locale", "en")

	want := []Entry{
		{Level: "global", Key: "locale", Value: "en"},
		{Level: "global", Key: "version", Value: "1"},
		{Level: "session", Key: "mood", Value: "happy"},
		{Level: "user", Key: "name", Value: "Ada"},
	}

	got := s.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	s.Insert("old", "k", "v")

	err := s.Replace([]Entry{
		{Level: "session", Key: "mood", Value: "tired"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Lookup("old", "k"); !errors.Is(err, ErrNotFound) {
		t.Error("Replace should drop prior contents")
	}
	got, err := s.Lookup("session", "mood")
	if err != nil || got != "tired" {
		t.Errorf("expected tired, got %q (%v)", got, err)
	}
}

func TestStore_ReplaceRejectsInvalidEntries(t *testing.T) {
	s := NewStore()
	s.Insert("session", "mood", "happy")

	err := s.Replace([]Entry{{Level: "", Key: "k", Value: "v"}})
	if sallieerr.AsCode(err) != sallieerr.CodeInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}

	// Prior state survives a rejected replace.
	got, err := s.Lookup("session", "mood")
	if err != nil || got != "happy" {
		t.Errorf("store changed after failed Replace: %q (%v)", got, err)
	}
}

func TestStore_Levels(t *testing.T) {
	s := NewStore()
	s.Insert("user", "name", "Ada")
	s.Insert("global", "version", "1")

	levels := s.Levels()
	if len(levels) != 2 || levels[0] != "global" || levels[1] != "user" {
		t.Errorf("unexpected levels: %v", levels)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			level := fmt.Sprintf("level-%d", n%2)
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j)
				s.Insert(level, key, "v")
				s.Lookup(level, key)
				s.Snapshot()
				if j%10 == 0 {
					s.Remove(level, key)
				}
			}
		}(i)
	}
	wg.Wait()
}
