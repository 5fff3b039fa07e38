package domain

import "time"

// JobStatus represents the lifecycle state of a job drive.
type JobStatus string

const (
	JobOpen   JobStatus = "Open"
	JobClosed JobStatus = "Closed"
)

// Criteria holds the eligibility bar applied to student applicants.
type Criteria struct {
	MinCGPA  float64  `json:"min_cgpa"`
	Branches []string `json:"branches"`
}

// Job is a recruitment drive a company runs at a single college. Creation
// requires an Active partnership between the two; the gate is checked once
// at creation and a later-revoked partnership does not close existing jobs.
type Job struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	CollegeID   string    `json:"college_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CTC         float64   `json:"ctc"`
	Deadline    time.Time `json:"deadline"`
	Criteria    Criteria  `json:"criteria"`
	// Rounds is the ordered interview sequence, e.g. ["Online Assessment", "HR"].
	Rounds    []string  `json:"rounds"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
