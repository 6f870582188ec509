package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/core/port"
)

// DB is the subset of *pgxpool.Pool the journal needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// JournalRepository implements port.Journal on PostgreSQL.
type JournalRepository struct {
	db DB
}

var _ port.Journal = (*JournalRepository)(nil)

// NewJournalRepository returns a new repository instance.
func NewJournalRepository(db DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// StartRun inserts a running run for sheet.
func (r *JournalRepository) StartRun(ctx context.Context, sheet string) (domain.Run, error) {
	run := domain.Run{
		ID:     uuid.NewString(),
		Sheet:  sheet,
		Status: domain.RunStatusRunning,
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO runs (id, sheet, status) VALUES ($1, $2, $3) RETURNING started_at`,
		run.ID, run.Sheet, run.Status,
	).Scan(&run.StartedAt)
	if err != nil {
		return domain.Run{}, err
	}
	return run, nil
}

// RecordSubmission stores one submitted row.
func (r *JournalRepository) RecordSubmission(ctx context.Context, s domain.Submission) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO submissions (run_id, sheet, row_number, remote_id) VALUES ($1, $2, $3, $4)`,
		s.RunID, s.Sheet, s.Row, s.RemoteID,
	)
	return err
}

// FinishRun closes the run. cause decides between finished and failed.
func (r *JournalRepository) FinishRun(ctx context.Context, run domain.Run, cause error) error {
	status, message := domain.RunStatusFinished, ""
	if cause != nil {
		status, message = domain.RunStatusFailed, cause.Error()
	}
	_, err := r.db.Exec(ctx,
		`UPDATE runs SET status = $2, submitted = $3, error = $4, finished_at = $5 WHERE id = $1`,
		run.ID, status, run.Submitted, message, time.Now().UTC(),
	)
	return err
}

// ListRuns returns the latest runs, newest first.
func (r *JournalRepository) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sheet, status, submitted, error, started_at, finished_at
           FROM runs
          ORDER BY started_at DESC
          LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Run, error) {
		var run domain.Run
		err := row.Scan(
			&run.ID,
			&run.Sheet,
			&run.Status,
			&run.Submitted,
			&run.Error,
			&run.StartedAt,
			&run.FinishedAt,
		)
		return run, err
	})
}

// Submissions returns the rows recorded for a run in submission order.
func (r *JournalRepository) Submissions(ctx context.Context, runID string) ([]domain.Submission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, run_id, sheet, row_number, remote_id, created_at
           FROM submissions
          WHERE run_id = $1
          ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Submission, error) {
		var s domain.Submission
		err := row.Scan(&s.ID, &s.RunID, &s.Sheet, &s.Row, &s.RemoteID, &s.CreatedAt)
		return s, err
	})
}
