package ports

import (
	"context"

	"github.com/campushire/recruitment-system/internal/core/domain"
)

// ProfilePatch carries the optional profile fields of an update. The service
// applies a field only when its incoming value is non-empty; an empty string
// never clears stored data.
type ProfilePatch struct {
	Name   string
	Phone  string
	Branch string
	CGPA   string
	Skills string
}

// AccountRepository defines persistence operations over account records.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// FindByRole returns all accounts with the given role, name-sorted.
	FindByRole(ctx context.Context, role string) ([]*domain.Account, error)
	// FindByCollege returns the accounts of the given role owned by
	// collegeID. Returned records never include the credential hash.
	FindByCollege(ctx context.Context, collegeID, role string) ([]*domain.Account, error)
	// SearchColleges matches college accounts by case-insensitive
	// substring on name. An empty query returns every college.
	SearchColleges(ctx context.Context, query string) ([]*domain.Account, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.Account, error)
	// UpdatePassword replaces the credential hash for the account with the
	// given email and clears its first-login flag.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
