package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"bulk-trafficker/internal/config/configs"
	"bulk-trafficker/internal/core/domain"
	"bulk-trafficker/internal/db"
)

const testPostgresImage = "postgres:16-alpine"

var (
	testAddr     string
	testAddrOnce sync.Once
	testAddrErr  error
)

// startTestPostgres runs one PostgreSQL container for the package and
// applies the journal schema to it. The container is reaped when the test
// binary exits.
func startTestPostgres() (string, error) {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testPostgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "journal",
				"POSTGRES_USER":     "trafficker",
				"POSTGRES_PASSWORD": "test_password",
			},
			// The entrypoint restarts the server once after initdb.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	addr := fmt.Sprintf("postgres://trafficker:test_password@%s:%s/journal?sslmode=disable", host, port.Port())
	if err = db.Migrate(addr); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return addr, nil
}

// newTestJournal returns a repository on the shared container. It needs
// Docker, so it is skipped in short mode.
func newTestJournal(t *testing.T) *JournalRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping journal test in short mode (requires Docker)")
	}

	testAddrOnce.Do(func() {
		testAddr, testAddrErr = startTestPostgres()
	})
	require.NoError(t, testAddrErr)

	u, err := url.Parse(testAddr)
	require.NoError(t, err)
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewJournalRepository(pool)
}

func TestJournalRunLifecycle(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	run, err := j.StartRun(ctx, domain.SheetCampaigns)
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusRunning, run.Status)
	assert.False(t, run.StartedAt.IsZero())

	require.NoError(t, j.RecordSubmission(ctx, domain.Submission{RunID: run.ID, Sheet: run.Sheet, Row: 2, RemoteID: "9001"}))
	require.NoError(t, j.RecordSubmission(ctx, domain.Submission{RunID: run.ID, Sheet: run.Sheet, Row: 4, RemoteID: "9002"}))

	run.Submitted = 2
	require.NoError(t, j.FinishRun(ctx, run, errors.New("Campaigns row 5: quota exceeded")))

	subs, err := j.Submissions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, 2, subs[0].Row)
	assert.Equal(t, "9002", subs[1].RemoteID)

	runs, err := j.ListRuns(ctx, 10)
	require.NoError(t, err)
	var found *domain.Run
	for i := range runs {
		if runs[i].ID == run.ID {
			found = &runs[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, domain.RunStatusFailed, found.Status)
	assert.Equal(t, 2, found.Submitted)
	assert.Contains(t, found.Error, "quota exceeded")
	assert.NotNil(t, found.FinishedAt)
}

func TestJournalFinishedRunAndLimit(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	first, err := j.StartRun(ctx, domain.SheetLandingPages)
	require.NoError(t, err)
	second, err := j.StartRun(ctx, domain.SheetPlacements)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	second.Submitted = 3
	require.NoError(t, j.FinishRun(ctx, second, nil))

	runs, err := j.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, domain.RunStatusFinished, runs[0].Status)
	assert.Equal(t, 3, runs[0].Submitted)
	assert.Empty(t, runs[0].Error)

	subs, err := j.Submissions(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
}
