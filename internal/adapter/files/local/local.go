// Package local implements port.FileStore on a directory tree. File IDs
// are slash-separated paths relative to the root; folder IDs name
// sub-directories.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"

	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/core/port"
)

// Store serves files below a root directory. Paths that would leave the
// root are rejected.
type Store struct {
	root *os.Root
}

var _ port.FileStore = (*Store)(nil)

func New(dir string) (*Store, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open asset directory: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Close() error {
	return s.root.Close()
}

func (s *Store) Open(_ context.Context, fileID string) (io.ReadCloser, error) {
	f, err := s.root.Open(path.Clean(fileID))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List returns the regular files directly inside folderID, sorted by name.
// An empty folder ID lists the root.
func (s *Store) List(_ context.Context, folderID string) ([]domain.File, error) {
	dir := path.Clean(folderID)
	if folderID == "" {
		dir = "."
	}
	f, err := s.root.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []domain.File
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		out = append(out, domain.File{ID: path.Join(dir, e.Name()), Name: e.Name()})
	}
	return out, nil
}
