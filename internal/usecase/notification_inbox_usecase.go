package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrInvalidNotificationInput = errors.New("invalid notification input")
)

// INotificationInbox reads back the in-app notifications the fan-out wrote.
// Recipient scoping happens in the repository: MarkRead is conditional on the
// caller being the recipient, so a foreign id reads as not-found.

type INotificationInbox interface {
	ListMine(ctx context.Context, actor Actor) ([]entities.Notification, error)
	MarkRead(ctx context.Context, actor Actor, notificationID string) (entities.Notification, error)
}

type NotificationInbox struct {
	notifications interfaces.INotificationRepository
}

var _ INotificationInbox = (*NotificationInbox)(nil)

func NewNotificationInbox(notifications interfaces.INotificationRepository) *NotificationInbox {
	return &NotificationInbox{notifications: notifications}
}

func (u *NotificationInbox) ListMine(ctx context.Context, actor Actor) ([]entities.Notification, error) {
	return u.notifications.ListByRecipient(ctx, actor.UserID)
}

func (u *NotificationInbox) MarkRead(ctx context.Context, actor Actor, notificationID string) (entities.Notification, error) {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return entities.Notification{}, fmt.Errorf("%w: missing notification id", ErrInvalidNotificationInput)
	}

	n, err := u.notifications.MarkRead(ctx, notificationID, actor.UserID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
