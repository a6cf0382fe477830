package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/angelmondragon/printshop-backend/pkg/errors"
	"github.com/angelmondragon/printshop-backend/pkg/storage"
)

// Store keeps artifacts as plain files under a base directory.
type Store struct {
	baseDir string
}

var _ storage.Store = (*Store)(nil)

// New creates the base directory if needed and returns a filesystem store.
func New(baseDir string) (*Store, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("storage base directory required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Put writes the artifact, replacing any previous bytes under the same name.
func (s *Store) Put(ctx context.Context, filename string, data []byte) (string, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write artifact")
	}
	return path, nil
}

func (s *Store) Fetch(ctx context.Context, filename string) ([]byte, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "document not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read artifact")
	}
	return data, nil
}

func (s *Store) Exists(ctx context.Context, filename string) (bool, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "stat artifact")
	}
	return true, nil
}

// resolve joins the filename onto the base directory and refuses anything
// that would escape it.
func (s *Store) resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid document filename")
	}
	return filepath.Join(s.baseDir, filename), nil
}
