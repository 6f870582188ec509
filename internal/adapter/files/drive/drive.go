// Package drive implements port.FileStore on Google Drive.
package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/core/port"
)

// Store reads creative assets from Drive by file ID.
type Store struct {
	svc *drive.Service
}

var _ port.FileStore = (*Store)(nil)

func New(ctx context.Context, opts ...option.ClientOption) (*Store, error) {
	opts = append([]option.ClientOption{option.WithScopes(drive.DriveReadonlyScope)}, opts...)
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Store{svc: svc}, nil
}

// Open downloads the file content. The caller closes the body.
func (s *Store) Open(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := s.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", fileID, err)
	}
	return resp.Body, nil
}

// List returns the non-trashed files directly inside folderID.
func (s *Store) List(ctx context.Context, folderID string) ([]domain.File, error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", strings.ReplaceAll(folderID, "'", `\'`))
	var out []domain.File
	err := s.svc.Files.List().
		Q(q).
		Fields("nextPageToken", "files(id,name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Pages(ctx, func(page *drive.FileList) error {
			for _, f := range page.Files {
				out = append(out, domain.File{ID: f.Id, Name: f.Name})
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", folderID, err)
	}
	return out, nil
}
