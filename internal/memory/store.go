// Package memory implements the hierarchical memory store: a two-level
// namespace (hierarchy level → key) of string values with snapshot-based
// persistence.
package memory

import (
	"sort"
	"sync"

	"github.com/sallie-oss/sallie/internal/errors"
)

// ErrNotFound is returned by Lookup for entries that were never inserted
// or have been removed. Absence is a normal outcome, not a fault.
var ErrNotFound = errors.New(errors.CodeNotFound, "memory entry not found")

// Entry is one (level, key, value) triple of the store.
type Entry struct {
	Level string `json:"level"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Store is a thread-safe hierarchical memory store. Hierarchy levels
// ("session", "user", "global", ...) are independent namespaces; a level
// root is created lazily on first insert and never by lookup.
//
// Create instances with NewStore and pass them explicitly — there is no
// package-level store.
type Store struct {
	mu    sync.RWMutex
	roots map[string]*Node
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{roots: make(map[string]*Node)}
}

// Insert stores value under (level, key), creating the level root if
// needed. Inserting an existing key overwrites its value.
func (s *Store) Insert(level, key, value string) error {
	if level == "" {
		return errors.New(errors.CodeInvalidArgument, "hierarchy level must not be empty")
	}
	if key == "" {
		return errors.New(errors.CodeInvalidArgument, "memory key must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root, ok := s.roots[level]
	if !ok {
		root = newRoot()
		s.roots[level] = root
	}
	root.setChild(key, value)
	return nil
}

// Lookup returns the value stored under (level, key), or ErrNotFound.
func (s *Store) Lookup(level, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	root, ok := s.roots[level]
	if !ok {
		return "", ErrNotFound
	}
	child := root.child(key)
	if child == nil || !child.HasValue {
		return "", ErrNotFound
	}
	return child.Value, nil
}

// Remove deletes the entry under (level, key) and reports whether a
// removal occurred. Removing a nonexistent entry is a no-op.
func (s *Store) Remove(level, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	root, ok := s.roots[level]
	if !ok {
		return false
	}
	if _, ok := root.Children[key]; !ok {
		return false
	}
	delete(root.Children, key)
	return true
}

// Snapshot returns every (level, key, value) triple, sorted by level then
// key. The ordering is deterministic and is what persistence encodes.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// snapshotLocked collects triples without locking. Caller must hold s.mu.
func (s *Store) snapshotLocked() []Entry {
	entries := make([]Entry, 0)
	for level, root := range s.roots {
		for key, child := range root.Children {
			if !child.HasValue {
				continue
			}
			entries = append(entries, Entry{Level: level, Key: key, Value: child.Value})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Level != entries[j].Level {
			return entries[i].Level < entries[j].Level
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Replace atomically swaps the store contents for the given triples.
// Entries with empty level or key are rejected, leaving the store
// unchanged.
func (s *Store) Replace(entries []Entry) error {
	roots := make(map[string]*Node)
	for _, e := range entries {
		if e.Level == "" || e.Key == "" {
			return errors.New(errors.CodeInvalidArgument, "entry with empty level or key")
		}
		root, ok := roots[e.Level]
		if !ok {
			root = newRoot()
			roots[e.Level] = root
		}
		root.setChild(e.Key, e.Value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = roots
	return nil
}

// Len returns the number of stored entries across all levels.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, root := range s.roots {
		for _, child := range root.Children {
			if child.HasValue {
				n++
			}
		}
	}
	return n
}

// Levels returns the hierarchy levels with a root, sorted.
func (s *Store) Levels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	levels := make([]string, 0, len(s.roots))
	for level := range s.roots {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	return levels
}
