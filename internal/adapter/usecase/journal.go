package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bulk-trafficker/internal/core/domain"
)

// NopJournal keeps no record. It still hands out run IDs so log lines of
// one batch can be correlated.
type NopJournal struct{}

func (NopJournal) StartRun(_ context.Context, sheet string) (domain.Run, error) {
	return domain.Run{
		ID:        uuid.NewString(),
		Sheet:     sheet,
		Status:    domain.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}, nil
}

func (NopJournal) RecordSubmission(context.Context, domain.Submission) error { return nil }

func (NopJournal) FinishRun(context.Context, domain.Run, error) error { return nil }

func (NopJournal) ListRuns(context.Context, int) ([]domain.Run, error) { return nil, nil }
