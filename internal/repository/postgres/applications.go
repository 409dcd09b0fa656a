package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
)

type Applications struct {
	db *gorm.DB
}

func NewApplications(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (r *Applications) ListAll(ctx context.Context) ([]models.Application, error) {
	apps := []models.Application{}
	if err := r.db.WithContext(ctx).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Applications) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &app, nil
}

func (r *Applications) ListByEmail(ctx context.Context, email string) ([]models.Application, error) {
	apps := []models.Application{}
	if err := r.db.WithContext(ctx).Where("applicant_email = ?", email).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Applications) ListByJobID(ctx context.Context, jobID string) ([]models.Application, error) {
	apps := []models.Application{}
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Create relies on the unique index for the duplicate rule; the insert
// either lands or comes back as a duplicate-key error. No scan first.
func (r *Applications) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	app.ID = uuid.NewString()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repository.ErrAlreadyApplied
		}
		return nil, err
	}
	return app, nil
}

func (r *Applications) Update(ctx context.Context, id string, patch map[string]any) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	if err := repository.ApplyPatch(&app, patch); err != nil {
		return nil, err
	}
	app.ID = id
	app.UpdatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *Applications) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
