package domain

import "time"

// PartnershipStatus represents the lifecycle state of a connection request.
type PartnershipStatus string

const (
	PartnershipPending  PartnershipStatus = "Pending"
	PartnershipActive   PartnershipStatus = "Active"
	PartnershipRejected PartnershipStatus = "Rejected"
)

// Responded reports whether the status is terminal. Active and Rejected
// partnerships are never re-opened; re-requesting after a rejection creates
// a new record.
func (s PartnershipStatus) Responded() bool {
	return s == PartnershipActive || s == PartnershipRejected
}

// Partnership is a connection request between a company and a college.
// Either party may be the requester; once Active the direction no longer
// matters for authorization checks.
type Partnership struct {
	ID          string            `json:"id"`
	RequesterID string            `json:"requester_id"`
	RecipientID string            `json:"recipient_id"`
	Status      PartnershipStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Connects reports whether this partnership links the unordered pair
// {idA, idB}, regardless of which side sent the request.
func (p *Partnership) Connects(idA, idB string) bool {
	return (p.RequesterID == idA && p.RecipientID == idB) ||
		(p.RequesterID == idB && p.RecipientID == idA)
}
