package entities

import "time"

// JobStatus is the job lifecycle state. Transitions are monotonic:
// open -> assigned -> completed, with cancellation allowed from open or
// assigned only. Review state is not a status: a reviewed job is a
// completed job with a non-empty ReviewID.

type JobStatus string

const (
	JobStatusOpen      JobStatus = "open"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
)

// CanTransition reports whether a job may move from one status to another.
func CanTransition(from, to JobStatus) bool {
	switch from {
	case JobStatusOpen:
		return to == JobStatusAssigned || to == JobStatusCancelled
	case JobStatusAssigned:
		return to == JobStatusCompleted || to == JobStatusCancelled
	default:
		return false
	}
}

// Urgency is how quickly the customer needs the work done.

type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyUrgent    Urgency = "urgent"
	UrgencySoon      Urgency = "soon"
	UrgencyFlexible  Urgency = "flexible"
)

// ValidUrgency reports whether u is a known urgency value.
func ValidUrgency(u Urgency) bool {
	switch u {
	case UrgencyEmergency, UrgencyUrgent, UrgencySoon, UrgencyFlexible:
		return true
	}
	return false
}

// JobPaymentStatus tracks the money side of a job, advanced only by
// processor-originated events. The capture endpoint never writes it.

type JobPaymentStatus string

const (
	PaymentStatusNone         JobPaymentStatus = "none"
	PaymentStatusDepositPaid  JobPaymentStatus = "deposit_paid"
	PaymentStatusPendingFinal JobPaymentStatus = "pending_final"
	PaymentStatusFullyPaid    JobPaymentStatus = "fully_paid"
	PaymentStatusAuthorized   JobPaymentStatus = "authorized"
	PaymentStatusCaptured     JobPaymentStatus = "captured"
	PaymentStatusSucceeded    JobPaymentStatus = "succeeded"
)

// PaymentType distinguishes the two captures a job can carry.

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeFinal   PaymentType = "final"
)

// ValidPaymentType reports whether t is deposit or final.
func ValidPaymentType(t PaymentType) bool {
	return t == PaymentTypeDeposit || t == PaymentTypeFinal
}

// PaymentRecord is one entry of the append-only payments history on a job.
type PaymentRecord struct {
	Type            PaymentType `json:"type"`
	Amount          float64     `json:"amount"`
	PaidAt          time.Time   `json:"paid_at"`
	PaymentIntentID string      `json:"payment_intent_id"`
	ReceiptURL      string      `json:"receipt_url,omitempty"`
}

// JobLocation is where the work happens. CitySlug is derived from Town and
// is the only field location matching looks at.
type JobLocation struct {
	Postcode string `json:"postcode"`
	Town     string `json:"town,omitempty"`
	CitySlug string `json:"city_slug,omitempty"`
}

// Job is a unit of work posted by a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CustomerID is immutable after creation. Payment intent references are
// opaque processor identifiers; this service never interprets them beyond
// passing them back to the processor on capture.
type Job struct {
	ID                     string           `json:"id"`
	CustomerID             string           `json:"customer_id"`
	Title                  string           `json:"title"`
	Description            string           `json:"description"`
	Urgency                Urgency          `json:"urgency"`
	ServiceType            string           `json:"service_type"`
	Specialties            []string         `json:"specialties,omitempty"`
	Location               JobLocation      `json:"location"`
	Budget                 *float64         `json:"budget,omitempty"`
	ScheduledDate          *time.Time       `json:"scheduled_date,omitempty"`
	Status                 JobStatus        `json:"status"`
	Photos                 []string         `json:"photos,omitempty"`
	TradespersonID         string           `json:"tradesperson_id,omitempty"`
	DepositPaymentIntentID string           `json:"deposit_payment_intent_id,omitempty"`
	FinalPaymentIntentID   string           `json:"final_payment_intent_id,omitempty"`
	PaymentStatus          JobPaymentStatus `json:"payment_status"`
	Payments               []PaymentRecord  `json:"payments,omitempty"`
	ReviewID               string           `json:"review_id,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// JobPatch is a partial update to a job. A nil field means "not present in
// the patch"; a non-nil pointer to a zero value means "explicitly cleared".
// The repository applies exactly the present fields in one merge write.
type JobPatch struct {
	Title                  *string           `json:"title,omitempty"`
	Description            *string           `json:"description,omitempty"`
	Urgency                *Urgency          `json:"urgency,omitempty"`
	ServiceType            *string           `json:"service_type,omitempty"`
	Specialties            *[]string         `json:"specialties,omitempty"`
	Postcode               *string           `json:"postcode,omitempty"`
	Town                   *string           `json:"town,omitempty"`
	CitySlug               *string           `json:"-"`
	Budget                 *float64          `json:"budget,omitempty"`
	ScheduledDate          *time.Time        `json:"scheduled_date,omitempty"`
	Photos                 *[]string         `json:"photos,omitempty"`
	Status                 *JobStatus        `json:"-"`
	TradespersonID         *string           `json:"-"`
	DepositPaymentIntentID *string           `json:"deposit_payment_intent_id,omitempty"`
	FinalPaymentIntentID   *string           `json:"final_payment_intent_id,omitempty"`
	PaymentStatus          *JobPaymentStatus `json:"-"`
	ReviewID               *string           `json:"-"`
}

// IsZero reports whether the patch carries no fields at all.
func (p JobPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Urgency == nil &&
		p.ServiceType == nil && p.Specialties == nil && p.Postcode == nil &&
		p.Town == nil && p.CitySlug == nil && p.Budget == nil &&
		p.ScheduledDate == nil && p.Photos == nil && p.Status == nil &&
		p.TradespersonID == nil && p.DepositPaymentIntentID == nil &&
		p.FinalPaymentIntentID == nil && p.PaymentStatus == nil && p.ReviewID == nil
}
