package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/hirebridge/hirebridge/internal/dtos"
	"github.com/hirebridge/hirebridge/internal/models"
)

// Session is the active applicant identity. It is re-read on every
// submission attempt rather than captured once, because the signed-in user
// (or the recruiter applying as a candidate) can change mid-session.
type Session struct {
	Name  string
	Email string
}

// Tracker keeps the application list the UI reasons about: fetched from the
// API when reachable, falling back to the last local mirror when not. Its
// "already applied" answer is advisory only; the server-side duplicate
// check stays authoritative and can still reject a submission the tracker
// believed was novel (two tabs racing, for instance).
type Tracker struct {
	api     API
	local   *LocalStore
	session func() Session

	mu   sync.Mutex
	apps []models.Application
}

func NewTracker(api API, local *LocalStore, session func() Session) *Tracker {
	return &Tracker{api: api, local: local, session: session}
}

// Refresh pulls the application list from the API and mirrors it locally.
// When the fetch fails, the cache falls back to the local mirror and the
// fetch error is returned so the caller can surface it; the tracker stays
// usable either way.
func (t *Tracker) Refresh(ctx context.Context) error {
	apps, err := t.api.Applications(ctx)
	if err != nil {
		cached := []models.Application{}
		if t.local != nil {
			_ = t.local.Get(localKeyApplications, &cached)
		}
		t.mu.Lock()
		t.apps = cached
		t.mu.Unlock()
		return err
	}

	t.mu.Lock()
	t.apps = apps
	t.mu.Unlock()

	if t.local != nil {
		// A failed mirror write only means the offline copy goes stale;
		// the fetched list is already live.
		_ = t.local.Set(localKeyApplications, apps)
	}
	return nil
}

// Applications returns a copy of the cached list.
func (t *Tracker) Applications() []models.Application {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.Application, len(t.apps))
	copy(out, t.apps)
	return out
}

// HasApplied reports whether the current session identity already applied
// to the job, judged against the cached list.
func (t *Tracker) HasApplied(jobID string) bool {
	return t.hasApplied(jobID, t.session().Email)
}

func (t *Tracker) hasApplied(jobID, email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, a := range t.apps {
		if a.JobID == jobID && a.ApplicantEmail == email {
			return true
		}
	}
	return false
}

// Apply submits an application for the job. The identity comes from the
// session at call time; the job snapshot fields are denormalized from the
// posting. On success the canonical server record is appended to the cache
// and local mirror — no full re-fetch.
func (t *Tracker) Apply(ctx context.Context, job models.Job, resume []byte) (*models.Application, error) {
	sess := t.session()
	if sess.Email == "" {
		return nil, fmt.Errorf("no signed-in identity to apply with")
	}
	if t.hasApplied(job.ID, sess.Email) {
		return nil, ErrAlreadyApplied
	}

	req := &dtos.ApplicationCreationRequest{
		JobID:          job.ID,
		JobTitle:       job.Title,
		Company:        job.CompanyName,
		CompanyID:      job.CompanyID,
		Location:       job.Location,
		Salary:         job.Salary,
		Logo:           job.CompanyLogo,
		ApplicantName:  sess.Name,
		ApplicantEmail: sess.Email,
		Resume:         resume,
	}
	app, err := t.api.CreateApplication(ctx, req)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.apps = append(t.apps, *app)
	snapshot := make([]models.Application, len(t.apps))
	copy(snapshot, t.apps)
	t.mu.Unlock()

	if t.local != nil {
		_ = t.local.Set(localKeyApplications, snapshot)
	}
	return app, nil
}

// Withdraw hard-deletes the application and drops it from the cache.
func (t *Tracker) Withdraw(ctx context.Context, id string) error {
	if err := t.api.DeleteApplication(ctx, id); err != nil {
		return err
	}
	t.mu.Lock()
	for i := range t.apps {
		if t.apps[i].ID == id {
			t.apps = append(t.apps[:i], t.apps[i+1:]...)
			break
		}
	}
	snapshot := make([]models.Application, len(t.apps))
	copy(snapshot, t.apps)
	t.mu.Unlock()

	if t.local != nil {
		_ = t.local.Set(localKeyApplications, snapshot)
	}
	return nil
}

// StatusStyle is the visual state an application status maps to.
type StatusStyle string

const (
	StyleApplied  StatusStyle = "applied"
	StyleAccepted StatusStyle = "accepted"
	StyleRejected StatusStyle = "rejected"
)

// StyleForStatus projects a status string onto its visual state. Anything
// unrecognized renders as the Applied style, the least alarming default.
func StyleForStatus(status string) StatusStyle {
	switch status {
	case models.StatusAccepted:
		return StyleAccepted
	case models.StatusRejected:
		return StyleRejected
	default:
		return StyleApplied
	}
}
