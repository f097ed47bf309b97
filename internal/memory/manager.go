package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sallie-oss/sallie/internal/errors"
	"github.com/sallie-oss/sallie/internal/event"
)

// Checkpoint is a point-in-time copy of the store written to a file for
// easy recovery and inspection.
type Checkpoint struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"entries"`
}

// Manager owns a memory store and its durable backend.
type Manager struct {
	store   *Store
	backend Backend
	bus     *event.Bus
}

// NewManager creates a manager with the given snapshot driver.
// Supported drivers: "memory" (or empty, no durability), "file"
// (JSON-lines snapshot file), "sqlite" (SQLite database).
func NewManager(driver, path string, bus *event.Bus) (*Manager, error) {
	var backend Backend
	var err error

	switch driver {
	case "memory", "":
		backend = nil
	case "file":
		backend, err = NewFileBackend(path)
		if err != nil {
			return nil, err
		}
	case "sqlite":
		backend, err = NewSQLiteBackend(path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New(errors.CodeDriverUnknown, "unknown memory driver: "+driver).
			WithSuggestion("Use one of: memory, file, sqlite")
	}

	return &Manager{store: NewStore(), backend: backend, bus: bus}, nil
}

// Store returns the managed store.
func (m *Manager) Store() *Store {
	return m.store
}

// Flush persists the current store contents to the backend. With no
// backend configured it is a no-op.
func (m *Manager) Flush() error {
	if m.backend == nil {
		return nil
	}

	entries := m.store.Snapshot()
	if err := m.backend.Save(entries); err != nil {
		return err
	}

	m.emit(event.MemoryPersisted, map[string]interface{}{"entries": len(entries)})
	return nil
}

// Restore replaces the store contents with the backend snapshot. The
// swap is atomic: a backend read failure leaves the store unchanged.
func (m *Manager) Restore() error {
	if m.backend == nil {
		return nil
	}

	entries, err := m.backend.Load()
	if err != nil {
		return err
	}
	if err := m.store.Replace(entries); err != nil {
		return err
	}

	m.emit(event.MemoryLoaded, map[string]interface{}{"entries": len(entries)})
	return nil
}

// SaveCheckpoint writes a checkpoint file under dir and returns its path.
func (m *Manager) SaveCheckpoint(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(errors.CodePersistFailed, "create checkpoints dir", err)
	}

	cp := Checkpoint{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Entries:   m.store.Snapshot(),
	}

	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.CodePersistFailed, "marshal checkpoint", err)
	}

	filename := filepath.Join(dir, cp.ID+".json")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", errors.Wrap(errors.CodePersistFailed, "write checkpoint", err)
	}
	return filename, nil
}

// Close flushes the store and closes the backend.
func (m *Manager) Close() error {
	if m.backend == nil {
		return nil
	}
	if err := m.Flush(); err != nil {
		m.backend.Close()
		return err
	}
	return m.backend.Close()
}

func (m *Manager) emit(t event.EventType, data map[string]interface{}) {
	if m.bus == nil {
		return
	}
	_ = m.bus.Emit(event.NewEvent(t, data))
}
