package repo

import (
	"sort"
	"sync"

	"github.com/sallie-oss/sallie/internal/errors"
)

// MemoryStore implements an in-memory repository store.
type MemoryStore struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	users map[string]*User
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: make(map[string]*Task),
		users: make(map[string]*User),
	}
}

// SaveTask saves a task, overwriting any existing task with the same ID.
func (s *MemoryStore) SaveTask(task *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task
	return nil
}

// GetTask retrieves a task by ID.
func (s *MemoryStore) GetTask(id string) (*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if task, ok := s.tasks[id]; ok {
		return task, nil
	}
	return nil, errors.New(errors.CodeRepoNotFound, "task not found: "+id)
}

// ListTasks lists the most recently created tasks.
func (s *MemoryStore) ListTasks(limit int) ([]*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}

	// Sort by creation time descending.
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	if limit > 0 && len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return tasks, nil
}

// DeleteTask deletes a task.
func (s *MemoryStore) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, id)
	return nil
}

// SaveUser saves a user.
func (s *MemoryStore) SaveUser(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

// GetUser retrieves a user by ID.
func (s *MemoryStore) GetUser(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, errors.New(errors.CodeRepoNotFound, "user not found: "+id)
}

// ListUsers lists all users sorted by name.
func (s *MemoryStore) ListUsers() ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})
	return users, nil
}

// DeleteUser deletes a user.
func (s *MemoryStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

// Close closes the store (no-op for memory).
func (s *MemoryStore) Close() error {
	return nil
}
