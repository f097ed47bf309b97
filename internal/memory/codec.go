package memory

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/sallie-oss/sallie/internal/errors"
)

// Persist writes the full store to w as JSON lines, one
// {"level","key","value"} object per line, sorted by level then key.
// JSON escaping keeps values with newlines or delimiters unambiguous,
// and an empty store encodes to zero lines.
func (s *Store) Persist(w io.Writer) error {
	entries := s.Snapshot()

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return errors.Wrap(errors.CodePersistFailed, "encode memory entry", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.CodePersistFailed, "flush memory snapshot", err)
	}
	return nil
}

// Load reads a snapshot previously written by Persist and replaces the
// store contents with it. The replacement is atomic: the whole snapshot
// is decoded first, and on any read or decode error the store keeps its
// prior state.
func (s *Store) Load(r io.Reader) error {
	entries, err := decodeEntries(r)
	if err != nil {
		return err
	}
	if err := s.Replace(entries); err != nil {
		return errors.Wrap(errors.CodeLoadFailed, "invalid memory snapshot", err)
	}
	return nil
}

// decodeEntries reads all JSON-line entries from r.
func decodeEntries(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)
	entries := make([]Entry, 0)
	for {
		var e Entry
		if err := dec.Decode(&e); err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(errors.CodeLoadFailed, "decode memory entry", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
