package entities

import "time"

// Quote is an offer submitted by a provider against a job. Quotes are never
// mutated after creation; acceptance is recorded on the job itself.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
type Quote struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	TradespersonID string    `json:"tradesperson_id"`
	Price          float64   `json:"price"`
	DepositAmount  *float64  `json:"deposit_amount,omitempty"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

// TemplateScope says whether a quote template belongs to an individual
// provider or to a business account.

type TemplateScope string

const (
	ScopePersonal TemplateScope = "personal"
	ScopeBusiness TemplateScope = "business"
)

// BasicTierTemplateLimit caps non-archived personal templates on basic
// accounts.
const BasicTierTemplateLimit = 5

// QuoteTemplate is a reusable quote line saved by a provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// Templates are never hard-deleted: deletion archives them so historical
// quotes built from them stay intact.
type QuoteTemplate struct {
	ID              string        `json:"id"`
	OwnerUserID     string        `json:"owner_user_id"`
	BusinessID      string        `json:"business_id,omitempty"`
	Scope           TemplateScope `json:"scope"`
	Category        string        `json:"category"`
	Unit            string        `json:"unit"`
	DefaultQuantity float64       `json:"default_quantity"`
	UnitPrice       float64       `json:"unit_price"`
	VATRate         float64       `json:"vat_rate"`
	IsArchived      bool          `json:"is_archived"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// QuoteTemplatePatch is a partial update to a template. Nil means "leave the
// field alone".
type QuoteTemplatePatch struct {
	Category        *string  `json:"category,omitempty"`
	Unit            *string  `json:"unit,omitempty"`
	DefaultQuantity *float64 `json:"default_quantity,omitempty"`
	UnitPrice       *float64 `json:"unit_price,omitempty"`
	VATRate         *float64 `json:"vat_rate,omitempty"`
	IsArchived      *bool    `json:"-"`
}

// IsZero reports whether the patch carries no fields.
func (p QuoteTemplatePatch) IsZero() bool {
	return p.Category == nil && p.Unit == nil && p.DefaultQuantity == nil &&
		p.UnitPrice == nil && p.VATRate == nil && p.IsArchived == nil
}

// CanEditTemplate applies the template permission rule: a personal template
// is editable only by its owner; a business template only by a
// business_owner or manager of the owning business.
func CanEditTemplate(t QuoteTemplate, callerID string, callerRole Role, callerBusinessID string) bool {
	if t.Scope == ScopeBusiness {
		return CanAccess(callerRole, []Role{RoleBusinessOwner, RoleManager}) &&
			callerBusinessID != "" && callerBusinessID == t.BusinessID
	}
	return t.OwnerUserID == callerID
}
