package usecase

import "tradeportal/internal/domain/entities"

// Actor is the authenticated caller of a usecase operation, as extracted by
// the HTTP identity middleware. Authorization decisions are re-evaluated per
// call against the actor, never cached across requests.
type Actor struct {
	UserID     string
	Role       entities.Role
	Tier       entities.SubscriptionTier
	BusinessID string
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool { return a.Role == entities.RoleAdmin }
