// Package file implements the key-value store as a single JSON document on
// disk, replaced atomically on every write.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"

	"task-viewer/internal/errors"
	"task-viewer/internal/logging"
)

// Store keeps every key in one JSON object. Reads always go to disk so that
// values written by another process are picked up.
type Store struct {
	mu   sync.Mutex
	path string
	perm os.FileMode
}

// New returns a store at path. The parent directory must exist.
func New(path string) *Store {
	return &Store{path: path, perm: 0o644}
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := doc[key]
	return value, ok, nil
}

// Set replaces the value for key and rewrites the document.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[key] = value

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.NewDatabaseError("encode "+filepath.Base(s.path), err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return errors.NewDatabaseError("write "+filepath.Base(s.path), err)
	}
	// atomic.WriteFile keeps the mode of an existing file but not for new ones
	if err := os.Chmod(s.path, s.perm); err != nil {
		return errors.NewDatabaseError("chmod "+filepath.Base(s.path), err)
	}

	logging.Debugf("stored %s in %s (%d bytes)\n", key, s.path, len(value))
	return nil
}

// Close is a no-op; the document is never held open.
func (s *Store) Close() error {
	return nil
}

// load reads the document. A missing or unreadable-as-JSON document is
// treated as empty.
func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, errors.NewDatabaseError("read "+filepath.Base(s.path), err)
	}

	doc := make(map[string]string)
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Debugf("ignoring malformed store %s: %v\n", s.path, err)
		return make(map[string]string), nil
	}
	return doc, nil
}
