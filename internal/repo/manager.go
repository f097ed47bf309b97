package repo

import (
	"time"

	"github.com/google/uuid"

	"github.com/sallie-oss/sallie/internal/errors"
	"github.com/sallie-oss/sallie/internal/event"
)

// Manager owns the repository store and emits lifecycle events.
type Manager struct {
	store Store
	bus   *event.Bus
}

// NewManager creates a manager with the given storage driver.
// Supported drivers: "memory" (or empty) and "sqlite".
func NewManager(driver, path string, bus *event.Bus) (*Manager, error) {
	var store Store
	var err error

	switch driver {
	case "memory", "":
		store = NewMemoryStore()
	case "sqlite":
		store, err = NewSQLiteStore(path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New(errors.CodeDriverUnknown, "unknown repository driver: "+driver).
			WithSuggestion("Use one of: memory, sqlite")
	}

	return &Manager{store: store, bus: bus}, nil
}

// Close closes the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}

// CreateTask creates and saves a pending task with a fresh ID.
func (m *Manager) CreateTask(title string) (*Task, error) {
	if title == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "task title must not be empty")
	}

	task := NewTask(uuid.New().String(), title)
	if err := m.store.SaveTask(task); err != nil {
		return nil, err
	}

	m.emit(event.TaskCreated, map[string]interface{}{"task_id": task.ID, "title": title})
	return task, nil
}

// CompleteTask marks the task done.
func (m *Manager) CompleteTask(id string) (*Task, error) {
	task, err := m.store.GetTask(id)
	if err != nil {
		return nil, err
	}

	task.Complete()
	if err := m.store.SaveTask(task); err != nil {
		return nil, err
	}

	m.emit(event.TaskCompleted, map[string]interface{}{"task_id": task.ID})
	return task, nil
}

// ListTasks lists recent tasks.
func (m *Manager) ListTasks(limit int) ([]*Task, error) {
	return m.store.ListTasks(limit)
}

// GetTask retrieves a task by ID.
func (m *Manager) GetTask(id string) (*Task, error) {
	return m.store.GetTask(id)
}

// DeleteTask deletes a task.
func (m *Manager) DeleteTask(id string) error {
	return m.store.DeleteTask(id)
}

// CreateUser creates and saves a user with a fresh ID.
func (m *Manager) CreateUser(name, email string) (*User, error) {
	if name == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "user name must not be empty")
	}

	user := &User{ID: uuid.New().String(), Name: name, Email: email, CreatedAt: time.Now()}
	if err := m.store.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (m *Manager) GetUser(id string) (*User, error) {
	return m.store.GetUser(id)
}

// ListUsers lists all users.
func (m *Manager) ListUsers() ([]*User, error) {
	return m.store.ListUsers()
}

func (m *Manager) emit(t event.EventType, data map[string]interface{}) {
	if m.bus == nil {
		return
	}
	_ = m.bus.Emit(event.NewEvent(t, data))
}
