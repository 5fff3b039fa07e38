package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// NetworkService runs the partnership lifecycle: request, respond, and the
// directionless active-partner check that gates job creation.
type NetworkService struct {
	partnerships ports.PartnershipRepository
	accounts     ports.AccountRepository
	activity     ports.ActivityRecorder
	log          zerolog.Logger
}

func NewNetworkService(partnerships ports.PartnershipRepository, accounts ports.AccountRepository, activity ports.ActivityRecorder, log zerolog.Logger) *NetworkService {
	return &NetworkService{partnerships: partnerships, accounts: accounts, activity: activity, log: log}
}

// Request opens a Pending partnership. A pair already linked by a Pending or
// Active partnership cannot open a second one; a Rejected history does not
// block a fresh request.
func (s *NetworkService) Request(ctx context.Context, requesterID, recipientID string) (*domain.Partnership, error) {
	if requesterID == "" || recipientID == "" || requesterID == recipientID {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.accounts.FindByID(ctx, recipientID); err != nil {
		return nil, err
	}

	existing, err := s.partnerships.FindBetween(ctx, requesterID, recipientID,
		domain.PartnershipPending, domain.PartnershipActive)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domain.ErrPartnershipExists
	}

	now := time.Now().UTC()
	created, err := s.partnerships.Create(ctx, &domain.Partnership{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      domain.PartnershipPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.record(requesterID, domain.ActivityPartnershipRequest, created.ID, recipientID, "")
	s.log.Info().
		Str("partnership_id", created.ID).
		Str("requester_id", requesterID).
		Str("recipient_id", recipientID).
		Msg("partnership requested")

	return created, nil
}

// Respond moves a Pending partnership to Active or Rejected. Only the
// recipient of the request may respond, and terminal states are never
// re-opened.
func (s *NetworkService) Respond(ctx context.Context, actorID, partnershipID, decision string) (*domain.Partnership, error) {
	var status domain.PartnershipStatus
	switch decision {
	case ports.DecisionAccept:
		status = domain.PartnershipActive
	case ports.DecisionReject:
		status = domain.PartnershipRejected
	default:
		return nil, domain.ErrInvalidInput
	}

	current, err := s.partnerships.FindByID(ctx, partnershipID)
	if err != nil {
		return nil, err
	}
	if current.RecipientID != actorID {
		return nil, domain.ErrForbidden
	}
	if current.Status.Responded() {
		return nil, domain.ErrAlreadyResponded
	}

	updated, err := s.partnerships.UpdateStatus(ctx, partnershipID, status)
	if err != nil {
		return nil, err
	}

	s.record(updated.RecipientID, domain.ActivityPartnershipRespond, updated.ID, updated.RequesterID, decision)
	s.log.Info().
		Str("partnership_id", partnershipID).
		Str("status", string(status)).
		Msg("partnership responded")

	return updated, nil
}

// ListNetwork returns every partnership the account is party to, with the
// counterparty resolved.
func (s *NetworkService) ListNetwork(ctx context.Context, accountID string) ([]ports.PartnershipView, error) {
	partnerships, err := s.partnerships.FindByParty(ctx, accountID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.PartnershipView, 0, len(partnerships))
	for _, p := range partnerships {
		counterpartID := p.RequesterID
		incoming := true
		if p.RequesterID == accountID {
			counterpartID = p.RecipientID
			incoming = false
		}

		view := ports.PartnershipView{
			ID:            p.ID,
			Status:        p.Status,
			CounterpartID: counterpartID,
			Incoming:      incoming,
			CreatedAt:     p.CreatedAt,
		}
		if counterpart, err := s.accounts.FindByID(ctx, counterpartID); err == nil {
			view.CounterpartName = counterpart.Name
			view.CounterpartRole = counterpart.Role
		}
		views = append(views, view)
	}
	return views, nil
}

// SearchColleges matches college accounts by name substring.
func (s *NetworkService) SearchColleges(ctx context.Context, query string) ([]ports.CollegeSummary, error) {
	colleges, err := s.accounts.SearchColleges(ctx, query)
	if err != nil {
		return nil, err
	}
	summaries := make([]ports.CollegeSummary, len(colleges))
	for i, c := range colleges {
		summaries[i] = ports.CollegeSummary{ID: c.ID, Name: c.Name}
	}
	return summaries, nil
}

// IsActivePartner reports whether an Active partnership links idA and idB,
// whichever side requested it.
func (s *NetworkService) IsActivePartner(ctx context.Context, idA, idB string) (bool, error) {
	active, err := s.partnerships.FindBetween(ctx, idA, idB, domain.PartnershipActive)
	if err != nil {
		return false, err
	}
	return len(active) > 0, nil
}

func (s *NetworkService) record(actorID, action, subjectID, scopeID, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(ports.ActivityInput{
		ActorID:   actorID,
		Action:    action,
		SubjectID: subjectID,
		ScopeID:   scopeID,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
