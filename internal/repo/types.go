// Package repo provides the task and user repositories backing the
// assistant, with in-memory and SQLite storage drivers.
package repo

import (
	"time"
)

// Task is a to-do item tracked for the user.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Title       string    `json:"title"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"` // pending, done
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// User is a person the assistant serves.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTask creates a pending task.
func NewTask(id, title string) *Task {
	return &Task{
		ID:        id,
		Title:     title,
		Status:    "pending",
		CreatedAt: time.Now(),
	}
}

// Complete marks the task done.
func (t *Task) Complete() {
	t.Status = "done"
	t.CompletedAt = time.Now()
}

// IsDone reports whether the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == "done"
}
