package port

import (
	"context"

	"bulk-trafficker/internal/core/domain"
)

// TraffickingUseCase is the inbound port used by the CLI and HTTP adapters.
type TraffickingUseCase interface {
	// RunSheet submits every eligible row of one entity sheet and writes the
	// returned IDs back. The first failing row aborts the batch; the summary
	// still reports what was submitted before it.
	RunSheet(ctx context.Context, sheet string) (domain.BatchSummary, error)
	// RunAll runs every entity sheet in domain.BatchOrder and stops at the
	// first failing sheet.
	RunAll(ctx context.Context) ([]domain.BatchSummary, error)
	// List writes a listing to the Lists sheet and returns the row count.
	List(ctx context.Context, kind string) (int, error)
	// Runs returns the most recent journal entries.
	Runs(ctx context.Context, limit int) ([]domain.Run, error)
}
