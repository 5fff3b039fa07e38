package domain

import "time"

// Activity actions recorded in the audit trail.
const (
	ActivityStudentAdded       = "student_added"
	ActivityStudentRemoved     = "student_removed"
	ActivityStaffAdded         = "staff_added"
	ActivityBulkImport         = "bulk_import"
	ActivityPartnershipRequest = "partnership_requested"
	ActivityPartnershipRespond = "partnership_responded"
	ActivityJobCreated         = "job_created"
)

// Activity is a single audit-trail entry. ScopeID is the college the action
// affects; entries for the same scope are written in order.
type Activity struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	SubjectID string    `json:"subject_id,omitempty"`
	ScopeID   string    `json:"scope_id"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
