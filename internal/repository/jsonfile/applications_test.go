package jsonfile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
	"github.com/hirebridge/hirebridge/internal/store"
)

func newApplicationsRepo(t *testing.T) *Applications {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewApplications(s)
}

func sampleApplication(jobID, email string) *models.Application {
	return &models.Application{
		JobID:          jobID,
		JobTitle:       "Backend Engineer",
		Company:        "Acme",
		Location:       "Bangalore",
		ApplicantName:  "Alice",
		ApplicantEmail: email,
	}
}

func TestApplicationsCreate(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	app, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.False(t, app.CreatedAt.IsZero())
	assert.False(t, app.UpdatedAt.IsZero())

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestApplicationsCreateKeepsExplicitStatus(t *testing.T) {
	repo := newApplicationsRepo(t)

	in := sampleApplication("j1", "a@x.com")
	in.Status = models.StatusApplied
	app, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, app.Status)
}

func TestApplicationsDuplicateRejected(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.ErrorIs(t, err, repository.ErrAlreadyApplied)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestApplicationsDistinctPairsAllowed(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleApplication("j1", "b@x.com"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleApplication("j2", "a@x.com"))
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// Concurrent submissions for the same (job, email) pair must produce
// exactly one stored application: the duplicate scan and the append share
// a critical section.
func TestApplicationsConcurrentDuplicates(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		rejected  int
		otherErrs int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, repository.ErrAlreadyApplied):
				rejected++
			default:
				otherErrs++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, rejected)
	assert.Zero(t, otherErrs)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestApplicationsStatusUpdateRoundTrip(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	app, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := repo.Update(ctx, app.ID, map[string]any{"status": models.StatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt), "updatedAt %v should be after createdAt %v", got.UpdatedAt, got.CreatedAt)
	// Untouched fields survive the patch.
	assert.Equal(t, "a@x.com", got.ApplicantEmail)
	assert.Equal(t, "Backend Engineer", got.JobTitle)
}

func TestApplicationsUpdateNotFound(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.NoError(t, err)

	_, err = repo.Update(ctx, "missing", map[string]any{"status": models.StatusAccepted})
	require.ErrorIs(t, err, repository.ErrNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusPending, all[0].Status)
}

func TestApplicationsDelete(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	app, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, app.ID))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestApplicationsDeleteNotFound(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.NoError(t, err)

	err = repo.Delete(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestApplicationsQueryHelpers(t *testing.T) {
	repo := newApplicationsRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleApplication("j1", "a@x.com"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleApplication("j2", "a@x.com"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleApplication("j1", "b@x.com"))
	require.NoError(t, err)

	byEmail, err := repo.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)

	byJob, err := repo.ListByJobID(ctx, "j1")
	require.NoError(t, err)
	assert.Len(t, byJob, 2)

	none, err := repo.ListByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}
