package memory

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/sallie-oss/sallie/internal/errors"
)

// Backend stores durable snapshots of the memory store.
type Backend interface {
	// Save persists the full set of triples, replacing any prior snapshot.
	Save(entries []Entry) error

	// Load returns the persisted triples, sorted by level then key.
	// A backend with no snapshot yet returns an empty slice, not an error.
	Load() ([]Entry, error)

	// Close releases any resources held by the backend.
	Close() error
}

// FileBackend stores snapshots in a single JSON-lines file.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file-based snapshot backend at path. The file
// is created on first Save.
func NewFileBackend(path string) (*FileBackend, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.CodePersistFailed, "create snapshot directory", err)
	}
	return &FileBackend{path: path}, nil
}

// Save writes the snapshot atomically: encode to a temp file in the same
// directory, then rename over the target. A failure partway leaves the
// prior snapshot intact.
func (b *FileBackend) Save(entries []Entry) error {
	staging := NewStore()
	if err := staging.Replace(entries); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := staging.Persist(&buf); err != nil {
		return err
	}

	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".sallie-mem-*")
	if err != nil {
		return errors.Wrap(errors.CodePersistFailed, "create temp snapshot", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(errors.CodePersistFailed, "write snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.CodePersistFailed, "close snapshot", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.CodePersistFailed, "replace snapshot", err)
	}
	return nil
}

// Load reads the snapshot file. A missing file is an empty snapshot.
func (b *FileBackend) Load() ([]Entry, error) {
	f, err := os.Open(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, errors.Wrap(errors.CodeLoadFailed, "open snapshot", err)
	}
	defer f.Close()

	return decodeEntries(f)
}

// Close is a no-op for the file backend.
func (b *FileBackend) Close() error {
	return nil
}
