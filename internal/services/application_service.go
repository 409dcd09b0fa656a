package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hirebridge/hirebridge/internal/dtos"
	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
)

type ApplicationService struct {
	apps repository.Applications
	jobs repository.Jobs
}

func NewApplicationService(apps repository.Applications, jobs repository.Jobs) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs}
}

// Submit validates the request and creates the application. The duplicate
// check itself belongs to the repository; by the time this returns, either
// the record is persisted or nothing was written.
func (s *ApplicationService) Submit(ctx context.Context, req *dtos.ApplicationCreationRequest) (*models.Application, error) {
	if req.JobID == "" || req.ApplicantEmail == "" {
		return nil, fmt.Errorf("%w: jobId and applicantEmail are required", ErrValidation)
	}
	if !strings.Contains(req.ApplicantEmail, "@") {
		return nil, fmt.Errorf("%w: applicantEmail must be an email address", ErrValidation)
	}

	app := &models.Application{
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
	}

	// Fill the job snapshot from the posting when the client left it blank.
	// A missing posting is fine; the application stands on its own.
	if job, err := s.jobs.GetByID(ctx, req.JobID); err == nil {
		if app.JobTitle == "" {
			app.JobTitle = job.Title
		}
		if app.Company == "" {
			app.Company = job.CompanyName
		}
		if app.CompanyID == "" {
			app.CompanyID = job.CompanyID
		}
		if app.Location == "" {
			app.Location = job.Location
		}
		if app.Salary == 0 {
			app.Salary = job.Salary
		}
		if app.Logo == "" {
			app.Logo = job.CompanyLogo
		}
	}

	return s.apps.Create(ctx, app)
}

// List supports the two query helpers the API exposes: by applicant email
// and by job id. Both filters together intersect.
func (s *ApplicationService) List(ctx context.Context, email, jobID string) ([]models.Application, error) {
	switch {
	case email == "" && jobID == "":
		return s.apps.ListAll(ctx)
	case email != "" && jobID == "":
		return s.apps.ListByEmail(ctx, email)
	case email == "" && jobID != "":
		return s.apps.ListByJobID(ctx, jobID)
	default:
		apps, err := s.apps.ListByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		matched := []models.Application{}
		for _, a := range apps {
			if a.JobID == jobID {
				matched = append(matched, a)
			}
		}
		return matched, nil
	}
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	return s.apps.GetByID(ctx, id)
}

func (s *ApplicationService) Update(ctx context.Context, id string, patch map[string]any) (*models.Application, error) {
	return s.apps.Update(ctx, id, patch)
}

// SetStatus records the employer's decision on an application.
func (s *ApplicationService) SetStatus(ctx context.Context, id, status string) (*models.Application, error) {
	return s.apps.Update(ctx, id, map[string]any{"status": status})
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.apps.Delete(ctx, id)
}
