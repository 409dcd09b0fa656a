package dtos

type ApplicationCreationRequest struct {
	JobID          string `json:"jobId" binding:"required"`
	ApplicantEmail string `json:"applicantEmail" binding:"required"`
	ApplicantName  string `json:"applicantName"`

	// Job snapshot fields. Clients may send them; blanks are filled from
	// the posting if it still exists.
	JobTitle  string `json:"jobTitle"`
	Company   string `json:"company"`
	CompanyID string `json:"companyId"`
	Location  string `json:"location"`
	Salary    int    `json:"salary"`
	Logo      string `json:"logo"`

	Resume []byte `json:"resume"`
	Status string `json:"status"` // defaults to "Pending" if empty
}
