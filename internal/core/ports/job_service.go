package ports

import (
	"context"
	"time"

	"github.com/campushire/recruitment-system/internal/core/domain"
)

// CreateJobInput carries everything needed to open a job drive.
type CreateJobInput struct {
	CompanyID   string
	CollegeID   string
	Title       string
	Description string
	Location    string
	CTC         float64
	Deadline    time.Time
	MinCGPA     float64
	Branches    []string
	Rounds      []string
}

// JobView is a job with display fields resolved for list responses: the
// college name for company listings, the company name and email for feeds.
type JobView struct {
	Job          domain.Job `json:"job"`
	CollegeName  string     `json:"college_name,omitempty"`
	CompanyName  string     `json:"company_name,omitempty"`
	CompanyEmail string     `json:"company_email,omitempty"`
}

// JobService implements partnership-gated job creation and scoped listings.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	ListForCompany(ctx context.Context, companyID string) ([]JobView, error)
	// ListForCollegeFeed returns the college's Open jobs, newest first.
	// collegeID must be structurally valid before any query runs.
	ListForCollegeFeed(ctx context.Context, collegeID string) ([]JobView, error)
}
