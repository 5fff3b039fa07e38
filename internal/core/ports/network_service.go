package ports

import (
	"context"
	"time"

	"github.com/campushire/recruitment-system/internal/core/domain"
)

// Partnership response decisions accepted by Respond.
const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

// PartnershipView is a partnership with the counterparty resolved from the
// caller's point of view.
type PartnershipView struct {
	ID              string                   `json:"id"`
	Status          domain.PartnershipStatus `json:"status"`
	CounterpartID   string                   `json:"counterpart_id"`
	CounterpartName string                   `json:"counterpart_name"`
	CounterpartRole string                   `json:"counterpart_role"`
	// Incoming is true when the counterparty sent the request, i.e. the
	// caller is the one who must respond.
	Incoming  bool      `json:"incoming"`
	CreatedAt time.Time `json:"created_at"`
}

// CollegeSummary is the lightweight directory entry for dropdowns and search.
type CollegeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NetworkService manages the partnership lifecycle between companies and
// colleges.
type NetworkService interface {
	Request(ctx context.Context, requesterID, recipientID string) (*domain.Partnership, error)
	// Respond settles a pending partnership. Only the recipient of the
	// request may respond.
	Respond(ctx context.Context, actorID, partnershipID, decision string) (*domain.Partnership, error)
	ListNetwork(ctx context.Context, accountID string) ([]PartnershipView, error)
	SearchColleges(ctx context.Context, query string) ([]CollegeSummary, error)
	// IsActivePartner reports whether an Active partnership links the two
	// accounts in either direction. Sole gate for job creation.
	IsActivePartner(ctx context.Context, idA, idB string) (bool, error)
}

// DirectoryService serves the public college directory.
type DirectoryService interface {
	ListColleges(ctx context.Context) ([]CollegeSummary, error)
}
