package port

import (
	"context"

	"bulk-trafficker/internal/core/domain"
)

// Journal keeps a durable record of batch runs and of every row that was
// submitted, so operators can trace what a failed batch already created.
type Journal interface {
	// StartRun opens a run for a sheet and returns it with ID and StartedAt set.
	StartRun(ctx context.Context, sheet string) (domain.Run, error)
	RecordSubmission(ctx context.Context, s domain.Submission) error
	// FinishRun closes a run. A nil cause marks it finished, anything else
	// failed with the error text stored.
	FinishRun(ctx context.Context, run domain.Run, cause error) error
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
}
