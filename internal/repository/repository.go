// Package repository defines the storage contracts shared by the JSON-file
// and Postgres backends. Which backend serves a deployment is decided once
// at startup from configuration; callers only see these interfaces.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hirebridge/hirebridge/internal/models"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrAlreadyApplied is the duplicate-application condition: at most one
	// application may exist per (job, applicant email) pair.
	ErrAlreadyApplied = errors.New("already applied for this job")

	ErrUserExists = errors.New("user already exists")
)

type Jobs interface {
	ListAll(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListByFilter(ctx context.Context, filter map[string]any) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	Update(ctx context.Context, id string, patch map[string]any) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

type Applications interface {
	ListAll(ctx context.Context) ([]models.Application, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByEmail(ctx context.Context, email string) ([]models.Application, error)
	ListByJobID(ctx context.Context, jobID string) ([]models.Application, error)
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	Update(ctx context.Context, id string, patch map[string]any) (*models.Application, error)
	Delete(ctx context.Context, id string) error
}

type Users interface {
	ListAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id string, patch map[string]any) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// ApplyPatch merges a partial update into a typed model: only the fields
// present in patch overwrite, everything else stays. Field names in patch
// are the JSON names clients send.
func ApplyPatch(v any, patch map[string]any) error {
	current, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var merged map[string]any
	if err := json.Unmarshal(current, &merged); err != nil {
		return err
	}
	for k, val := range patch {
		merged[k] = val
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
