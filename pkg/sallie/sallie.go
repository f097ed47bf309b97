// Package sallie provides a public API for embedding the assistant.
//
// Example usage:
//
//	import "github.com/sallie-oss/sallie/pkg/sallie"
//
//	a, err := sallie.Open(".")
//	defer a.Close()
//
//	a.Remember("session", "mood", "happy")
//	mood, err := a.Recall("session", "mood")
package sallie

import (
	"context"

	"github.com/sallie-oss/sallie/internal/assist"
	"github.com/sallie-oss/sallie/internal/config"
	"github.com/sallie-oss/sallie/internal/memory"
	"github.com/sallie-oss/sallie/internal/prefs"
	"github.com/sallie-oss/sallie/internal/repo"
	"github.com/sallie-oss/sallie/internal/telemetry"
)

// Suggestion re-exports the proactive suggestion type.
type Suggestion = assist.Suggestion

// Assistant bundles the assistant's stores behind one handle.
type Assistant struct {
	memory *memory.Manager
	tasks  *repo.Manager
	prefs  *prefs.Preferences
	cfg    *config.Config
	logger *telemetry.Logger
}

// Open loads configuration from dir and opens the configured stores,
// restoring persisted memory.
func Open(dir string) (*Assistant, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	logger := telemetry.NewLogger(cfg.Logging.Level)
	bus := config.BuildBus(cfg, logger)

	mem, err := memory.NewManager(cfg.Memory.Driver, cfg.Memory.Path, bus)
	if err != nil {
		return nil, err
	}
	if err := mem.Restore(); err != nil {
		mem.Close()
		return nil, err
	}

	tasks, err := repo.NewManager(cfg.Repo.Driver, cfg.Repo.Path, bus)
	if err != nil {
		mem.Close()
		return nil, err
	}

	p, err := prefs.LoadFile(cfg.Prefs.Path)
	if err != nil {
		mem.Close()
		tasks.Close()
		return nil, err
	}

	return &Assistant{
		memory: mem,
		tasks:  tasks,
		prefs:  p,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Remember stores a value in the memory hierarchy.
func (a *Assistant) Remember(level, key, value string) error {
	return a.memory.Store().Insert(level, key, value)
}

// Recall looks up a stored value. Absent entries return
// memory.ErrNotFound.
func (a *Assistant) Recall(level, key string) (string, error) {
	return a.memory.Store().Lookup(level, key)
}

// Forget removes a stored value and reports whether one existed.
func (a *Assistant) Forget(level, key string) bool {
	return a.memory.Store().Remove(level, key)
}

// LoadContext batch-populates a memory level from a context mapping,
// stringifying non-string values.
func (a *Assistant) LoadContext(level string, values map[string]interface{}) (int, error) {
	return assist.NewContextLoader(a.memory.Store(), level).LoadContext(values)
}

// Suggest returns the assistant's proactive suggestions.
func (a *Assistant) Suggest(ctx context.Context) ([]Suggestion, error) {
	return assist.NewSuggester(a.memory.Store(), a.tasks, a.prefs).Suggest(ctx)
}

// Tasks exposes the task repository manager.
func (a *Assistant) Tasks() *repo.Manager {
	return a.tasks
}

// Prefs exposes the loaded preferences.
func (a *Assistant) Prefs() *prefs.Preferences {
	return a.prefs
}

// Close flushes memory to its backend and releases all stores.
func (a *Assistant) Close() error {
	tasksErr := a.tasks.Close()
	memErr := a.memory.Close()
	a.logger.Close()
	if memErr != nil {
		return memErr
	}
	return tasksErr
}
