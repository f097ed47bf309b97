package memory

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/sallie-oss/sallie/internal/errors"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteBackend stores memory snapshots in a SQLite database.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the SQLite database at path.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.CodePersistFailed, "create memory database directory", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(errors.CodePersistFailed, "open memory database", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.CodePersistFailed, "migrate memory database", err)
	}

	return b, nil
}

func (b *SQLiteBackend) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS memories (
		level TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (level, key)
	);

	CREATE INDEX IF NOT EXISTS idx_memories_level ON memories(level);
	`
	_, err := b.db.Exec(schema)
	return err
}

// Save replaces the persisted snapshot with the given triples. Delete and
// repopulate run in one transaction so a failure leaves the prior
// snapshot intact.
func (b *SQLiteBackend) Save(entries []Entry) error {
	tx, err := b.db.Begin()
	if err != nil {
		return errors.Wrap(errors.CodePersistFailed, "begin snapshot transaction", err)
	}

	if _, err := tx.Exec("DELETE FROM memories"); err != nil {
		tx.Rollback()
		return errors.Wrap(errors.CodePersistFailed, "clear prior snapshot", err)
	}

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO memories (level, key, value) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return errors.Wrap(errors.CodePersistFailed, "prepare snapshot insert", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Level, e.Key, e.Value); err != nil {
			tx.Rollback()
			return errors.Wrap(errors.CodePersistFailed, "write snapshot entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.CodePersistFailed, "commit snapshot", err)
	}
	return nil
}

// Load returns all persisted triples sorted by level then key.
func (b *SQLiteBackend) Load() ([]Entry, error) {
	rows, err := b.db.Query("SELECT level, key, value FROM memories ORDER BY level, key")
	if err != nil {
		return nil, errors.Wrap(errors.CodeLoadFailed, "read snapshot", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Level, &e.Key, &e.Value); err != nil {
			return nil, errors.Wrap(errors.CodeLoadFailed, "scan snapshot entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeLoadFailed, "read snapshot", err)
	}

	return entries, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
