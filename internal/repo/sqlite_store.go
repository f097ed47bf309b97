package repo

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sallie-oss/sallie/internal/errors"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements repository storage using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the repository database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.CodePersistFailed, "create repository directory", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(errors.CodePersistFailed, "open repository database", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.CodePersistFailed, "migrate repository database", err)
	}

	return store, nil
}

// migrate creates the necessary tables.
func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		data JSON NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
	CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		data JSON NOT NULL,
		created_at DATETIME NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveTask saves a task.
func (s *SQLiteStore) SaveTask(task *Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return errors.Wrap(errors.CodePersistFailed, "marshal task", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO tasks (id, title, status, created_at, data)
		VALUES (?, ?, ?, ?, ?)
	`, task.ID, task.Title, task.Status, task.CreatedAt, data)
	return err
}

// GetTask retrieves a task by ID.
func (s *SQLiteStore) GetTask(id string) (*Task, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM tasks WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.CodeRepoNotFound, "task not found: "+id)
	}
	if err != nil {
		return nil, err
	}

	var task Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, errors.Wrap(errors.CodeLoadFailed, "unmarshal task", err)
	}
	return &task, nil
}

// ListTasks lists the most recently created tasks.
func (s *SQLiteStore) ListTasks(limit int) ([]*Task, error) {
	rows, err := s.db.Query(`
		SELECT data FROM tasks
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var task Task
		if err := json.Unmarshal(data, &task); err != nil {
			return nil, errors.Wrap(errors.CodeLoadFailed, "unmarshal task", err)
		}
		tasks = append(tasks, &task)
	}
	return tasks, rows.Err()
}

// DeleteTask deletes a task.
func (s *SQLiteStore) DeleteTask(id string) error {
	_, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	return err
}

// SaveUser saves a user.
func (s *SQLiteStore) SaveUser(user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(errors.CodePersistFailed, "marshal user", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO users (id, name, data, created_at)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Name, data, user.CreatedAt)
	return err
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(id string) (*User, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM users WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.CodeRepoNotFound, "user not found: "+id)
	}
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, errors.Wrap(errors.CodeLoadFailed, "unmarshal user", err)
	}
	return &user, nil
}

// ListUsers lists all users sorted by name.
func (s *SQLiteStore) ListUsers() ([]*User, error) {
	rows, err := s.db.Query("SELECT data FROM users ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var user User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, errors.Wrap(errors.CodeLoadFailed, "unmarshal user", err)
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// DeleteUser deletes a user.
func (s *SQLiteStore) DeleteUser(id string) error {
	_, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
