package port

import (
	"context"
	"io"

	"bulk-trafficker/internal/core/domain"
)

// SheetStore is the workbook the operator fills in. Rows and columns are
// 1-based. Implementations persist every write before returning so that a
// crash never loses an ID that was already created remotely.
type SheetStore interface {
	// ReadRows returns the data range of a sheet, header row included.
	// Numeric and date cells come back unformatted (dates as serial numbers).
	ReadRows(ctx context.Context, sheet string) ([]domain.Row, error)
	// NamedValue returns the value of a workbook-level named cell. It fails
	// with domain.ErrNamedNotFound when the name is not defined.
	NamedValue(ctx context.Context, name string) (string, error)
	// WriteStatus stores value as text in a single cell and marks it as
	// processed.
	WriteStatus(ctx context.Context, sheet string, row, col int, value string) error
	// WriteTable writes a header and rows starting at row 1, all as text.
	WriteTable(ctx context.Context, sheet string, t domain.Table) error
	// Protect marks a sheet read-only with a warning.
	Protect(ctx context.Context, sheet string) error
}

// FileStore resolves creative asset files.
type FileStore interface {
	// Open returns the content of the file with the given identifier.
	Open(ctx context.Context, fileID string) (io.ReadCloser, error)
	// List returns the files directly inside a folder.
	List(ctx context.Context, folderID string) ([]domain.File, error)
}
