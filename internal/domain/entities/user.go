package entities

// Role is the closed set of account roles known to the marketplace.
//
// All role gating funnels through CanAccess rather than ad hoc string
// comparisons scattered across handlers.

type Role string

const (
	RoleCustomer      Role = "customer"
	RoleTradesperson  Role = "tradesperson"
	RoleBusinessOwner Role = "business_owner"
	RoleManager       Role = "manager"
	RoleAdmin         Role = "admin"
)

// ProviderRoles are the roles that receive job fan-out and may submit quotes.
var ProviderRoles = []Role{RoleTradesperson, RoleBusinessOwner, RoleManager}

// CanAccess reports whether role is in the allowed set.
func CanAccess(role Role, allowed []Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// IsProvider reports whether the role belongs to the provider side of the
// marketplace.
func IsProvider(role Role) bool {
	return CanAccess(role, ProviderRoles)
}

// SubscriptionTier gates quote-template quantity and marketplace features.

type SubscriptionTier string

const (
	TierBasic    SubscriptionTier = "basic"
	TierPro      SubscriptionTier = "pro"
	TierBusiness SubscriptionTier = "business"
)

// TierOrder ranks tiers for gating comparisons. Unknown tiers rank below
// basic so a malformed record never unlocks paid features.
func TierOrder(t SubscriptionTier) int {
	switch t {
	case TierBasic:
		return 1
	case TierPro:
		return 2
	case TierBusiness:
		return 3
	default:
		return 0
	}
}

// User is a directory record for any account: customers posting jobs and
// providers receiving them.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (role-index): role
type User struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	Name             string           `json:"name"`
	Phone            string           `json:"phone,omitempty"`
	Role             Role             `json:"role"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	ServiceType      string           `json:"service_type,omitempty"`
	ServiceSlugs     []string         `json:"service_slugs,omitempty"`
	ServiceAreaSlugs []string         `json:"service_area_slugs,omitempty"`
	CitySlug         string           `json:"city_slug,omitempty"`
	BusinessID       string           `json:"business_id,omitempty"`
}
