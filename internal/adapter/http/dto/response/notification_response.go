package response

import (
	"time"

	"tradeportal/internal/domain/entities"
)

type NotificationResponse struct {
	ID          string            `json:"id"`
	RecipientID string            `json:"recipient_id"`
	Type        string            `json:"type"`
	Message     string            `json:"message"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	ReadAt      *time.Time        `json:"read_at,omitempty"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        string(n.Type),
		Message:     n.Message,
		Metadata:    n.Metadata,
		CreatedAt:   n.CreatedAt,
		ReadAt:      n.ReadAt,
	}
}

func FromNotifications(notifications []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return out
}
