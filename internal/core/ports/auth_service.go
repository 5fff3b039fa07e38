package ports

import "context"

// AccountView is the safe representation of an account returned to callers.
// It never carries the credential hash. CollegeID holds the resolved scope
// id: a college account's own id, or the owning college of a student or
// staff member.
type AccountView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	CollegeID  string `json:"college_id,omitempty"`
	FirstLogin bool   `json:"first_login"`
	Branch     string `json:"branch,omitempty"`
	CGPA       string `json:"cgpa,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Skills     string `json:"skills,omitempty"`
}

// RegisterInput carries self-registration data. CollegeID is optional and
// stored only when non-empty (students registering under a college).
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	CollegeID string
}

// AuthResult pairs an account view with a signed identity token.
type AuthResult struct {
	Token   string
	Account AccountView
}

// AuthService implements registration, login, and the trusted first-login
// password reset.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ChangePassword replaces the credential and clears the first-login
	// flag. It deliberately does not require the old password: it backs
	// the forced reset after logging in with a system-issued default,
	// not a general password-reset endpoint.
	ChangePassword(ctx context.Context, email, newPassword string) error
}

// TokenVerifier checks a bearer token and returns its claims.
// Implemented by the auth service, consumed by the HTTP middleware.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// TokenClaims is the verified content of an identity token.
type TokenClaims struct {
	AccountID string
	Role      string
	// ScopeID is the resolved college scope embedded at signing time.
	ScopeID string
}
