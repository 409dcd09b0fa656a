package client

import (
	"context"
	"time"

	"github.com/hirebridge/hirebridge/internal/dtos"
	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
	"github.com/hirebridge/hirebridge/internal/store"
)

// Simulated implements API entirely against the local store — the offline
// demo mode. It enforces the same duplicate rule the server does, and can
// add an artificial delay so the experience resembles a network round trip.
type Simulated struct {
	local *LocalStore
	delay time.Duration
}

func NewSimulated(local *LocalStore, delay time.Duration) *Simulated {
	return &Simulated{local: local, delay: delay}
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Simulated) Jobs(ctx context.Context) ([]models.Job, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	jobs := []models.Job{}
	if err := s.local.Get(localKeyJobs, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *Simulated) Applications(ctx context.Context) ([]models.Application, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	apps := []models.Application{}
	if err := s.local.Get(localKeyApplications, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *Simulated) CreateApplication(ctx context.Context, req *dtos.ApplicationCreationRequest) (*models.Application, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	apps := []models.Application{}
	if err := s.local.Get(localKeyApplications, &apps); err != nil {
		return nil, err
	}
	for _, existing := range apps {
		if existing.JobID == req.JobID && existing.ApplicantEmail == req.ApplicantEmail {
			return nil, ErrAlreadyApplied
		}
	}

	now := time.Now().UTC()
	app := models.Application{
		ID:             store.GenerateID(),
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		CompanyID:      req.CompanyID,
		Location:       req.Location,
		Salary:         req.Salary,
		Logo:           req.Logo,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		Resume:         req.Resume,
		Status:         req.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if app.Status == "" {
		app.Status = models.StatusPending
	}

	apps = append(apps, app)
	if err := s.local.Set(localKeyApplications, apps); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *Simulated) UpdateApplication(ctx context.Context, id string, patch map[string]any) (*models.Application, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	apps := []models.Application{}
	if err := s.local.Get(localKeyApplications, &apps); err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].ID != id {
			continue
		}
		if err := repository.ApplyPatch(&apps[i], patch); err != nil {
			return nil, err
		}
		apps[i].ID = id
		apps[i].UpdatedAt = time.Now().UTC()
		if err := s.local.Set(localKeyApplications, apps); err != nil {
			return nil, err
		}
		return &apps[i], nil
	}
	return nil, ErrNotFound
}

func (s *Simulated) DeleteApplication(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	apps := []models.Application{}
	if err := s.local.Get(localKeyApplications, &apps); err != nil {
		return err
	}
	for i := range apps {
		if apps[i].ID == id {
			apps = append(apps[:i], apps[i+1:]...)
			return s.local.Set(localKeyApplications, apps)
		}
	}
	return ErrNotFound
}
