package domain

import "errors"

var (
	// ErrInvalidInput covers missing or malformed required fields,
	// including a structurally invalid college identifier.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailExists is returned when an email is already registered,
	// whatever the role of the existing account.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials is deliberately shared between unknown-email
	// and wrong-password so login never discloses account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when the role/ownership predicate fails.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotPartnered is returned when a company attempts to post a job at
	// a college without an Active partnership. Distinct from not-found so
	// callers can tell "not allowed here" from "no such job".
	ErrNotPartnered = errors.New("no active partnership with this college")

	ErrAccountNotFound     = errors.New("account not found")
	ErrPartnershipNotFound = errors.New("partnership not found")
	ErrJobNotFound         = errors.New("job not found")

	// ErrPartnershipExists is returned when a Pending or Active
	// partnership already links the same pair.
	ErrPartnershipExists = errors.New("partnership already exists")

	// ErrAlreadyResponded is returned when responding to a partnership
	// that already reached a terminal state.
	ErrAlreadyResponded = errors.New("partnership already responded to")
)
