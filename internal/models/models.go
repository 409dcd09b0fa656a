package models

import (
	"time"
)

// Application status values. The recruiter moves an application from
// Pending/Applied to Accepted or Rejected; there is no further transition.
const (
	StatusPending  = "Pending"
	StatusApplied  = "Applied"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// ContentBlock is one block of a rich-text document, the shape the editor
// produces: a text insert plus optional formatting attributes.
type ContentBlock struct {
	Insert     string         `json:"insert"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// RichText is a structured rich-text document. A description with zero
// blocks counts as empty.
type RichText []ContentBlock

func (r RichText) IsEmpty() bool { return len(r) == 0 }

type Job struct {
	ID          string   `json:"_id" gorm:"primaryKey;column:id"`
	Title       string   `json:"title" gorm:"not null"`
	Description RichText `json:"description" gorm:"serializer:json;type:jsonb"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Level       string   `json:"level"`
	Salary      int      `json:"salary"`

	// Employer identity is denormalized onto the job at posting time. A
	// company rename does not rewrite old postings.
	CompanyID    string `json:"companyId"`
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	CompanyLogo  string `json:"companyLogo,omitempty"`

	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Application struct {
	ID    string `json:"_id" gorm:"primaryKey;column:id"`
	JobID string `json:"jobId" gorm:"column:job_id;uniqueIndex:idx_job_applicant"`

	// Snapshot of the job at application time. The job may be deleted
	// later; the application keeps these fields.
	JobTitle  string `json:"jobTitle"`
	Company   string `json:"company"`
	CompanyID string `json:"companyId"`
	Location  string `json:"location"`
	Salary    int    `json:"salary"`
	Logo      string `json:"logo,omitempty"`

	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail" gorm:"column:applicant_email;uniqueIndex:idx_job_applicant"`

	// Resume document, stored inline as a data payload.
	Resume []byte `json:"resume,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is a recruiter account. It is not an authenticated principal; it only
// supplies the company identity denormalized onto jobs and applications.
type User struct {
	ID        string    `json:"_id" gorm:"primaryKey;column:id"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role,omitempty"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
