package config

import (
	"os"
	"path/filepath"
	"testing"

	sallieerr "github.com/sallie-oss/sallie/internal/errors"
	"github.com/sallie-oss/sallie/internal/event"
)

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
name: sallie-home
version: "2.0"
memory:
  driver: file
  path: .sallie/memory.jsonl
repo:
  driver: memory
prefs:
  path: .sallie/prefs.json
logging:
  level: debug
`
	if err := os.WriteFile(filepath.Join(dir, "sallie.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "sallie-home" {
		t.Errorf("expected name sallie-home, got %s", cfg.Name)
	}
	if cfg.Memory.Driver != "file" {
		t.Errorf("expected memory driver file, got %s", cfg.Memory.Driver)
	}
	if cfg.Memory.Path != ".sallie/memory.jsonl" {
		t.Errorf("unexpected memory path: %s", cfg.Memory.Path)
	}
	if cfg.Repo.Driver != "memory" {
		t.Errorf("expected repo driver memory, got %s", cfg.Repo.Driver)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Memory.Driver != "sqlite" {
		t.Errorf("expected default sqlite driver, got %s", cfg.Memory.Driver)
	}
	if cfg.Prefs.Path != ".sallie/prefs.json" {
		t.Errorf("unexpected default prefs path: %s", cfg.Prefs.Path)
	}
}

func TestLoad_AppliesDefaultsToPartialConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
name: partial
memory:
  driver: memory
`
	os.WriteFile(filepath.Join(dir, "sallie.yaml"), []byte(content), 0644)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != "1.0" {
		t.Errorf("expected default version, got %s", cfg.Version)
	}
	if cfg.Repo.Driver != "sqlite" {
		t.Errorf("expected default repo driver, got %s", cfg.Repo.Driver)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default logging level, got %s", cfg.Logging.Level)
	}
}

func TestLoad_EnvInterpolation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SALLIE_TEST_MEMORY_PATH", "/tmp/env-memory.db")

	content := `
memory:
  driver: sqlite
  path: ${env.SALLIE_TEST_MEMORY_PATH}
`
	os.WriteFile(filepath.Join(dir, "sallie.yaml"), []byte(content), 0644)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Memory.Path != "/tmp/env-memory.db" {
		t.Errorf("expected interpolated path, got %s", cfg.Memory.Path)
	}
}

func TestLoad_InvalidDriverRejected(t *testing.T) {
	dir := t.TempDir()
	content := `
memory:
  driver: postgres
`
	os.WriteFile(filepath.Join(dir, "sallie.yaml"), []byte(content), 0644)

	_, err := Load(dir)
	if sallieerr.AsCode(err) != sallieerr.CodeConfigInvalid {
		t.Fatalf("expected CONFIG_INVALID, got %v", err)
	}
}

func TestLoad_InvalidHookRejected(t *testing.T) {
	dir := t.TempDir()
	content := `
hooks:
  enabled: true
  hooks:
    - name: notify
      type: webhook
`
	os.WriteFile(filepath.Join(dir, "sallie.yaml"), []byte(content), 0644)

	_, err := Load(dir)
	if sallieerr.AsCode(err) != sallieerr.CodeConfigInvalid {
		t.Fatalf("expected CONFIG_INVALID for webhook without url, got %v", err)
	}
}

func TestBuildBus_DisabledReturnsNil(t *testing.T) {
	cfg := defaultConfig()
	if bus := BuildBus(cfg, nil); bus != nil {
		t.Error("expected nil bus when hooks are disabled")
	}
}

func TestBuildBus_RegistersConfiguredHooks(t *testing.T) {
	cfg := defaultConfig()
	cfg.Hooks.Enabled = true
	cfg.Hooks.Hooks = []HookConfig{
		{Name: "audit", Type: "log", Events: []string{"permission.granted"}},
	}

	bus := BuildBus(cfg, nil)
	if bus == nil {
		t.Fatal("expected a bus")
	}
	// The log hook is non-blocking, so Emit must not error even with a nil logger.
	if err := bus.Emit(event.NewEvent(event.PermissionGranted, nil)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
