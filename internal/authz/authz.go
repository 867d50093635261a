// Package authz decides whether a requester may act on a resource.
// Ownership is the only rule: a resource belongs to exactly one user and only
// that user may read or change it.
package authz

import "github.com/google/uuid"

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Deny rejects the request.
	Deny Decision = iota
	// Allow permits the request.
	Allow
)

// String returns a lowercase name suitable for logging.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Authorize returns Allow only when requesterID owns the resource.
// A nil requester is never allowed, even against a nil owner.
func Authorize(resourceOwnerID, requesterID uuid.UUID) Decision {
	if requesterID == uuid.Nil {
		return Deny
	}
	if resourceOwnerID != requesterID {
		return Deny
	}
	return Allow
}
