package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hirebridge/hirebridge/internal/dtos"
	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
)

// Placeholder employer identity used when no recruiter account is known.
// Deliberately permissive: posting without an account still works.
const (
	defaultCompanyName  = "Company"
	defaultCompanyEmail = "recruiter@company.com"
)

type JobService struct {
	jobs  repository.Jobs
	users repository.Users
}

func NewJobService(jobs repository.Jobs, users repository.Users) *JobService {
	return &JobService{jobs: jobs, users: users}
}

// PostJob validates the submission and builds the posting, denormalizing
// the recruiter's company identity onto it.
func (s *JobService) PostJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: job title is required", ErrValidation)
	}
	if req.Description.IsEmpty() {
		return nil, fmt.Errorf("%w: job description is required", ErrValidation)
	}

	job := &models.Job{
		Title:       title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Level:       req.Level,
		Salary:      coerceSalary(req.Salary),
		CompanyID:   req.CompanyID,
		Visible:     true,
	}
	if req.Visible != nil {
		job.Visible = *req.Visible
	}

	job.CompanyName = req.CompanyName
	job.CompanyEmail = req.CompanyEmail
	if req.CompanyEmail != "" {
		if u, err := s.users.GetByEmail(ctx, req.CompanyEmail); err == nil {
			if job.CompanyName == "" {
				job.CompanyName = u.Name
			}
			if job.CompanyID == "" {
				job.CompanyID = u.ID
			}
			job.CompanyLogo = u.Logo
		}
	}
	if job.CompanyName == "" {
		job.CompanyName = defaultCompanyName
	}
	if job.CompanyEmail == "" {
		job.CompanyEmail = defaultCompanyEmail
	}

	return s.jobs.Create(ctx, job)
}

// List returns all jobs, or only those matching the filter when one is
// given. Filter values are matched exactly.
func (s *JobService) List(ctx context.Context, filter map[string]any) ([]models.Job, error) {
	if len(filter) == 0 {
		return s.jobs.ListAll(ctx)
	}
	return s.jobs.ListByFilter(ctx, filter)
}

func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) Update(ctx context.Context, id string, patch map[string]any) (*models.Job, error) {
	return s.jobs.Update(ctx, id, patch)
}

// SetVisibility toggles whether a posting shows up in listings without
// touching anything else on it.
func (s *JobService) SetVisibility(ctx context.Context, id string, visible bool) (*models.Job, error) {
	return s.jobs.Update(ctx, id, map[string]any{"visible": visible})
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}

// coerceSalary turns whatever the form produced into an integer. Input
// that is not a number comes out as 0; there is no floor or ceiling.
func coerceSalary(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return n
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
