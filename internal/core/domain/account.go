package domain

import "time"

const (
	RoleStudent       = "student"
	RoleCompany       = "company"
	RoleCollege       = "college"
	RoleCollegeMember = "college_member"
	RoleAdmin         = "admin"
)

// Default credentials issued to accounts created on someone's behalf.
// Holders of these are forced through the first-login password reset.
const (
	DefaultStudentPassword = "welcome123"
	DefaultStaffPassword   = "staff123"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleCompany, RoleCollege, RoleCollegeMember, RoleAdmin:
		return true
	}
	return false
}

// Account models any actor in the system: students, companies, colleges,
// college staff, and admins share one record type keyed by a globally
// unique email.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	// CollegeID references the owning college account for students and
	// college staff. Empty for every other role.
	CollegeID  string `json:"college_id,omitempty"`
	FirstLogin bool   `json:"first_login"`

	// Profile fields, meaningful for students only.
	Branch string `json:"branch,omitempty"`
	CGPA   string `json:"cgpa,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Skills string `json:"skills,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScopeID resolves the college identifier used to scope roster and job
// queries. A college account is its own scope; its students and staff
// resolve to the stored owning-college reference. Login and profile update
// both go through this so a college and its staff see the same data.
func (a *Account) ScopeID() string {
	if a.Role == RoleCollege {
		return a.ID
	}
	return a.CollegeID
}

// CanManageRoster reports whether an actor may list, add, or remove members
// of the roster owned by targetCollegeID. Only a college account or one of
// its staff qualifies; there is no cross-college access.
func CanManageRoster(actorRole, actorScopeID, targetCollegeID string) bool {
	if actorRole != RoleCollege && actorRole != RoleCollegeMember {
		return false
	}
	return actorScopeID != "" && actorScopeID == targetCollegeID
}
