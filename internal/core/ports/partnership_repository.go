package ports

import (
	"context"

	"github.com/campushire/recruitment-system/internal/core/domain"
)

// PartnershipRepository defines persistence operations over partnerships.
type PartnershipRepository interface {
	Create(ctx context.Context, p *domain.Partnership) (*domain.Partnership, error)
	FindByID(ctx context.Context, id string) (*domain.Partnership, error)
	// FindByParty returns every partnership in which accountID is either
	// requester or recipient, newest first.
	FindByParty(ctx context.Context, accountID string) ([]*domain.Partnership, error)
	// FindBetween returns partnerships linking the unordered pair
	// {idA, idB} with any of the given statuses. An empty status list
	// matches all statuses.
	FindBetween(ctx context.Context, idA, idB string, statuses ...domain.PartnershipStatus) ([]*domain.Partnership, error)
	UpdateStatus(ctx context.Context, id string, status domain.PartnershipStatus) (*domain.Partnership, error)
}
