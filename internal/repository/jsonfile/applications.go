package jsonfile

import (
	"context"
	"time"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
	"github.com/hirebridge/hirebridge/internal/store"
)

type Applications struct {
	store *store.Store
}

func NewApplications(s *store.Store) *Applications {
	return &Applications{store: s}
}

func (r *Applications) ListAll(ctx context.Context) ([]models.Application, error) {
	records, err := r.store.ReadAll(applicationsCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Application](records)
}

func (r *Applications) GetByID(ctx context.Context, id string) (*models.Application, error) {
	records, err := r.store.ReadAll(applicationsCollection)
	if err != nil {
		return nil, err
	}
	rec := store.FindByID(records, id)
	if rec == nil {
		return nil, repository.ErrNotFound
	}
	return decodeOne[models.Application](rec)
}

func (r *Applications) ListByEmail(ctx context.Context, email string) ([]models.Application, error) {
	records, err := r.store.ReadAll(applicationsCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Application](store.FindByFields(records, map[string]any{"applicantEmail": email}))
}

func (r *Applications) ListByJobID(ctx context.Context, jobID string) ([]models.Application, error) {
	records, err := r.store.ReadAll(applicationsCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Application](store.FindByFields(records, map[string]any{"jobId": jobID}))
}

// Create enforces the one-application-per-(job, applicant email) rule. The
// duplicate scan and the append run inside the same store.Update critical
// section, so two concurrent submissions for the same pair cannot both land.
func (r *Applications) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	app.ID = store.GenerateID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now

	rec, err := store.ToRecord(app)
	if err != nil {
		return nil, err
	}
	err = r.store.Update(applicationsCollection, func(records []store.Record) ([]store.Record, error) {
		for _, existing := range records {
			if existing["jobId"] == app.JobID && existing["applicantEmail"] == app.ApplicantEmail {
				return nil, repository.ErrAlreadyApplied
			}
		}
		return append(records, rec), nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *Applications) Update(ctx context.Context, id string, patch map[string]any) (*models.Application, error) {
	var updated *models.Application
	err := r.store.Update(applicationsCollection, func(records []store.Record) ([]store.Record, error) {
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
			updated, err = decodeOne[models.Application](rec)
			return records, err
		}
		return nil, repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete is a hard delete; there is no tombstone to restore from.
func (r *Applications) Delete(ctx context.Context, id string) error {
	return r.store.Update(applicationsCollection, func(records []store.Record) ([]store.Record, error) {
		for i, rec := range records {
			if rec["_id"] == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, repository.ErrNotFound
	})
}
