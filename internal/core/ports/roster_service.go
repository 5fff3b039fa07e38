package ports

import "context"

// Actor identifies the authenticated caller of a scoped operation, as
// recovered from the token claims.
type Actor struct {
	ID      string
	Role    string
	ScopeID string
}

// AddStudentInput carries a single manual student addition. Role and
// credential are not caller-controlled: the account is always created as a
// student with the default password and a set first-login flag.
type AddStudentInput struct {
	Name      string
	Email     string
	Branch    string
	CGPA      string
	Phone     string
	CollegeID string
}

// AddStaffInput carries a staff (college_member) addition.
type AddStaffInput struct {
	Name      string
	Email     string
	CollegeID string
}

// ImportRow is one decoded spreadsheet row: arbitrary field names mapped to
// string or numeric values. Header casing and whitespace are not guaranteed.
type ImportRow map[string]any

// ImportSummary reports a bulk onboarding run. Failed covers malformed rows
// and duplicates alike; per-row detail is not reported.
type ImportSummary struct {
	Created int `json:"created"`
	Failed  int `json:"failed"`
}

// RosterService manages a college's student and staff roster.
type RosterService interface {
	AddStudent(ctx context.Context, actor Actor, input AddStudentInput) (*AccountView, error)
	AddStaff(ctx context.Context, actor Actor, input AddStaffInput) (*AccountView, error)
	// ImportStudents reconciles rows in input order. Rows are independent:
	// a failure never aborts the batch, and rows committed before a crash
	// stay committed.
	ImportStudents(ctx context.Context, actor Actor, collegeID string, rows []ImportRow) (*ImportSummary, error)
	ListStudents(ctx context.Context, actor Actor, collegeID string) ([]AccountView, error)
	ListTeam(ctx context.Context, actor Actor, collegeID string) ([]AccountView, error)
	RemoveStudent(ctx context.Context, actor Actor, studentID string) error
	// UpdateProfile merges non-empty patch fields into the caller's own
	// account and returns the updated view.
	UpdateProfile(ctx context.Context, actorID string, patch ProfilePatch) (*AccountView, error)
}
