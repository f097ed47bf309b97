//go:build integration

package integration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sallie-oss/sallie/internal/memory"
	"github.com/sallie-oss/sallie/pkg/sallie"
)

func TestMemoryPersistenceAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "memory.db")

	// --- Run 1: store memories, close ---
	run1, err := memory.NewManager("sqlite", dbPath, nil)
	if err != nil {
		t.Fatal(err)
	}

	run1.Store().Insert("session", "mood", "happy")
	run1.Store().Insert("user", "name", "Ada")
	run1.Store().Insert("session", "mood", "tired") // overwrite

	if err := run1.Close(); err != nil {
		t.Fatal(err)
	}

	// --- Run 2: new instance, should see the persisted state ---
	run2, err := memory.NewManager("sqlite", dbPath, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer run2.Close()

	if err := run2.Restore(); err != nil {
		t.Fatal(err)
	}

	if got, _ := run2.Store().Lookup("session", "mood"); got != "tired" {
		t.Errorf("expected overwrite to persist, got %q", got)
	}
	if got, _ := run2.Store().Lookup("user", "name"); got != "Ada" {
		t.Errorf("expected Ada, got %q", got)
	}
	if run2.Store().Len() != 2 {
		t.Errorf("expected 2 entries, got %d", run2.Store().Len())
	}

	// Removal in run 2 must persist to run 3.
	run2.Store().Remove("user", "name")
	if err := run2.Flush(); err != nil {
		t.Fatal(err)
	}

	run3, err := memory.NewManager("sqlite", dbPath, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer run3.Close()
	if err := run3.Restore(); err != nil {
		t.Fatal(err)
	}
	if _, err := run3.Store().Lookup("user", "name"); !errors.Is(err, memory.ErrNotFound) {
		t.Error("removed entry should stay removed across runs")
	}
}

func TestAssistantEndToEnd(t *testing.T) {
	dir := t.TempDir()

	cfg := fmt.Sprintf(`
name: integration
memory:
  driver: file
  path: %s
repo:
  driver: sqlite
  path: %s
prefs:
  path: %s
`,
		filepath.Join(dir, "memory.jsonl"),
		filepath.Join(dir, "repo.db"),
		filepath.Join(dir, "prefs.json"),
	)
	if err := os.WriteFile(filepath.Join(dir, "sallie.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := sallie.Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Remember("session", "mood", "happy"); err != nil {
		t.Fatal(err)
	}
	n, err := a.LoadContext("session", map[string]interface{}{
		"open_tabs": 7,
		"focused":   true,
	})
	if err != nil || n != 2 {
		t.Fatalf("LoadContext: n=%d err=%v", n, err)
	}
	task, err := a.Tasks().CreateTask("write integration test")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen: everything must still be there.
	b, err := sallie.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if got, _ := b.Recall("session", "mood"); got != "happy" {
		t.Errorf("expected happy, got %q", got)
	}
	if got, _ := b.Recall("session", "open_tabs"); got != "7" {
		t.Errorf("expected \"7\", got %q", got)
	}
	loaded, err := b.Tasks().GetTask(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Title != "write integration test" {
		t.Errorf("unexpected task title %q", loaded.Title)
	}
}
