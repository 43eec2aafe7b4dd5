// Package store persists the full task collection as a single
// pretty-printed JSON file, replacing it atomically on every save.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daytrack/daytrack-go/internal/task"
)

// Store is an explicit handle on the tasks file. Every operation goes back
// to disk; there is no in-memory cache across calls.
type Store struct {
	Path string
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{Path: path}
}

// Load reads the full task collection. A missing file is an empty
// collection, not an error. Unparseable JSON yields a CorruptFileError;
// a parseable file with an invalid record yields a MalformedTaskError.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &task.CorruptFileError{Path: s.Path, Err: err}
	}

	tasks := make([]task.Task, 0, len(raw))
	for i, record := range raw {
		t, err := task.Decode(record, i)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save writes the full collection, fully overwriting prior contents. The
// file is pretty-printed with 2-space indentation, keeps non-ASCII text
// unescaped, and ends with a newline. The write goes through a temp file
// in the same directory followed by a rename, so a failed save never
// leaves a half-written tasks file behind.
func (s *Store) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	if err := writeFileAtomic(s.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

// writeFileAtomic writes data to path via a sibling temp file and rename.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
