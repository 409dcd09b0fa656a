package dtos

import "github.com/hirebridge/hirebridge/internal/models"

type JobCreationRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description models.RichText `json:"description" binding:"required"`

	// Optional fields
	Category string `json:"category"`
	Location string `json:"location"`
	Level    string `json:"level"`

	// Salary arrives as whatever the form produced (number or string) and
	// is coerced to an integer server-side.
	Salary any `json:"salary"`

	// Employer identity; blanks are filled from the recruiter account when
	// one matches CompanyEmail, else from permissive placeholders.
	CompanyID    string `json:"companyId"`
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`

	Visible *bool `json:"visible"` // defaults to true
}
