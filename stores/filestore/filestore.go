// Package filestore persists preferences in a single JSON or YAML document.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-numfmt"
)

// Store keeps preferences in memory and rewrites the whole file on every Set.
// The format follows the file extension: .json, .yaml or .yml.
type Store struct {
	path   string
	format string
	perm   os.FileMode

	mu     sync.RWMutex
	values map[string]string
}

var _ numfmt.PreferenceStore = &Store{}

// Option configures a Store.
type Option func(*Store)

// WithFileMode sets the permissions used when the file is written.
func WithFileMode(perm os.FileMode) Option {
	return func(s *Store) {
		s.perm = perm
	}
}

// Open reads path if it exists. A missing file is an empty store; it is
// created on the first Set.
func Open(path string, opts ...Option) (*Store, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	s := &Store{
		path:   path,
		format: format,
		perm:   0o600,
		values: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("filestore: read %s: %w", path, err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return s, nil
	}

	if err := s.decode(data); err != nil {
		return nil, fmt.Errorf("filestore: parse %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.write(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

func (s *Store) decode(data []byte) error {
	switch s.format {
	case "json":
		return json.Unmarshal(data, &s.values)
	default:
		return yaml.Unmarshal(data, &s.values)
	}
}

func (s *Store) encode() ([]byte, error) {
	switch s.format {
	case "json":
		data, err := json.MarshalIndent(s.values, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return yaml.Marshal(s.values)
	}
}

// write replaces the file through a temp file and rename so readers never
// observe a partial document.
func (s *Store) write() error {
	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("filestore: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("filestore: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: write: %w", err)
	}
	if err := tmp.Chmod(s.perm); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: close: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("filestore: rename: %w", err)
	}
	return nil
}

func formatFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("filestore: unsupported extension %q", ext)
	}
}
