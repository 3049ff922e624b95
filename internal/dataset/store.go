// Package dataset reads and writes tabular datasets inside a base
// directory. All names are resolved against the base and may not escape
// it; JSON, YAML, and CSV files decode into dataview records with inferred
// columns.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store errors.
var (
	ErrOutsideBase       = errors.New("path escapes base directory")
	ErrEmptyName         = errors.New("dataset name cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Store scopes file access to one base directory.
type Store struct {
	baseDir string
}

// NewStore creates the base directory when missing and returns a store
// rooted there. An empty baseDir means the working directory.
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		baseDir = "."
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("creating base directory: %w", err)
	}
	return &Store{baseDir: abs}, nil
}

// BaseDir returns the absolute base directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// resolve joins name onto the base directory and rejects any path that
// escapes it, "../" traversal included.
func (s *Store) resolve(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}

	path := filepath.Join(s.baseDir, name)
	rel, err := filepath.Rel(s.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideBase, name)
	}
	return path, nil
}

// ReadFile returns the raw contents of a dataset file.
func (s *Store) ReadFile(name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// WriteJSON marshals v with indentation and writes it under name,
// creating parent directories inside the base as needed.
func (s *Store) WriteJSON(name string, v any) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	data, err := marshalJSON(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Delete removes a dataset file.
func (s *Store) Delete(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting %s: %w", name, err)
	}
	return nil
}

// Size returns the size of a dataset file in bytes.
func (s *Store) Size(name string) (int64, error) {
	path, err := s.resolve(name)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", name, err)
	}
	return info.Size(), nil
}
