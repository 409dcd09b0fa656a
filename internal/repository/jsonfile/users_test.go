package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
)

func TestUsersCreateAndGetByEmail(t *testing.T) {
	repo := NewUsers(newStore(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, &models.User{Name: "Acme", Email: "hr@acme.com", Role: "recruiter"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	got, err := repo.GetByEmail(ctx, "hr@acme.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@acme.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsersDuplicateEmailRejected(t *testing.T) {
	repo := NewUsers(newStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{Name: "Acme", Email: "hr@acme.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{Name: "Other", Email: "hr@acme.com"})
	require.ErrorIs(t, err, repository.ErrUserExists)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUsersUpdateAndDelete(t *testing.T) {
	repo := NewUsers(newStore(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, &models.User{Name: "Acme", Email: "hr@acme.com"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, user.ID, map[string]any{"name": "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, "hr@acme.com", updated.Email)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.GetByID(ctx, user.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
