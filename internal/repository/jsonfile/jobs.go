package jsonfile

import (
	"context"
	"time"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
	"github.com/hirebridge/hirebridge/internal/store"
)

type Jobs struct {
	store *store.Store
}

func NewJobs(s *store.Store) *Jobs {
	return &Jobs{store: s}
}

func (r *Jobs) ListAll(ctx context.Context) ([]models.Job, error) {
	records, err := r.store.ReadAll(jobsCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Job](records)
}

func (r *Jobs) GetByID(ctx context.Context, id string) (*models.Job, error) {
	records, err := r.store.ReadAll(jobsCollection)
	if err != nil {
		return nil, err
	}
	rec := store.FindByID(records, id)
	if rec == nil {
		return nil, repository.ErrNotFound
	}
	return decodeOne[models.Job](rec)
}

func (r *Jobs) ListByFilter(ctx context.Context, filter map[string]any) ([]models.Job, error) {
	records, err := r.store.ReadAll(jobsCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Job](store.FindByFields(records, filter))
}

// Create assigns an id and timestamps and appends. Identical postings are
// allowed; there is no uniqueness rule on jobs.
func (r *Jobs) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	job.ID = store.GenerateID()
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	rec, err := store.ToRecord(job)
	if err != nil {
		return nil, err
	}
	err = r.store.Update(jobsCollection, func(records []store.Record) ([]store.Record, error) {
		return append(records, rec), nil
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Jobs) Update(ctx context.Context, id string, patch map[string]any) (*models.Job, error) {
	var updated *models.Job
	err := r.store.Update(jobsCollection, func(records []store.Record) ([]store.Record, error) {
		for i, rec := range records {
			if rec["_id"] != id {
				continue
			}
			for k, v := range patch {
				rec[k] = v
			}
			rec["updatedAt"] = nowStamp()
			records[i] = rec
			var err error
			updated, err = decodeOne[models.Job](rec)
			return records, err
		}
		return nil, repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the posting only. Applications that reference it keep
// their job snapshot and are left alone.
func (r *Jobs) Delete(ctx context.Context, id string) error {
	return r.store.Update(jobsCollection, func(records []store.Record) ([]store.Record, error) {
		for i, rec := range records {
			if rec["_id"] == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, repository.ErrNotFound
	})
}
