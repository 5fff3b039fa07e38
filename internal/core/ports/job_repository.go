package ports

import (
	"context"

	"github.com/campushire/recruitment-system/internal/core/domain"
)

// JobRepository defines persistence operations over job drives.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// FindByCompany returns every job the company posted, newest first.
	FindByCompany(ctx context.Context, companyID string) ([]*domain.Job, error)
	// FindOpenByCollege returns the college's Open jobs, newest first.
	// Closed jobs never appear in a feed.
	FindOpenByCollege(ctx context.Context, collegeID string) ([]*domain.Job, error)
}

// ActivityRepository appends audit-trail entries.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.Activity) error
}
