package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
)

var jobFilterColumns = map[string]string{
	"title":     "title",
	"category":  "category",
	"location":  "location",
	"level":     "level",
	"companyId": "company_id",
	"visible":   "visible",
}

type Jobs struct {
	db *gorm.DB
}

func NewJobs(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (r *Jobs) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := r.db.WithContext(ctx).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Jobs) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

func (r *Jobs) ListByFilter(ctx context.Context, filter map[string]any) ([]models.Job, error) {
	where, err := whereFromFilter(filter, jobFilterColumns)
	if err != nil {
		return nil, err
	}
	jobs := []models.Job{}
	if err := r.db.WithContext(ctx).Where(where).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *Jobs) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	job.ID = uuid.NewString()
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update keeps the merge semantics of the file backend: load, overlay the
// patch, save the whole row.
func (r *Jobs) Update(ctx context.Context, id string, patch map[string]any) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	if err := repository.ApplyPatch(&job, patch); err != nil {
		return nil, err
	}
	job.ID = id
	job.UpdatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *Jobs) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
