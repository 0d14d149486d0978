package entities

import "time"

// NotificationType classifies in-app notifications.

type NotificationType string

const (
	NotificationNewJob NotificationType = "new_job"
)

// Notification is a fire-and-forget in-app record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (recipient_id-index): recipient_id
type Notification struct {
	ID          string            `json:"id"`
	RecipientID string            `json:"recipient_id"`
	Type        NotificationType  `json:"type"`
	Message     string            `json:"message"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	ReadAt      *time.Time        `json:"read_at,omitempty"`
}

// Review is the thin record this core links back onto a job. The review
// domain itself (moderation, provider responses) lives outside this service.
//
// Storage model (DynamoDB):
//   - PK: id
type Review struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
