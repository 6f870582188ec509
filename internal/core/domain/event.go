package domain

import (
	"time"
)

// Run statuses recorded in the journal.
const (
	RunStatusRunning  = "running"
	RunStatusFinished = "finished"
	RunStatusFailed   = "failed"
)

// Run is one batch over one sheet.
type Run struct {
	ID         string     `json:"id"`
	Sheet      string     `json:"sheet"`
	Status     string     `json:"status"`
	Submitted  int        `json:"submitted"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Submission records one row that reached the remote service.
type Submission struct {
	ID        int64
	RunID     string
	Sheet     string
	Row       int
	RemoteID  string
	CreatedAt time.Time
}

// BatchSummary is the completion notice of a batch.
type BatchSummary struct {
	Sheet     string `json:"sheet"`
	RunID     string `json:"run_id"`
	Submitted int    `json:"submitted"`
	Skipped   int    `json:"skipped"`
}
