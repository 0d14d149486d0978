package interfaces

import (
	"context"

	"tradeportal/internal/domain/entities"
)

// IUserDirectory is the contract onto the external user directory: record
// lookup plus the provider listing the matching engine partitions.
// GetUserByEmail is part of the directory's lookup surface even though only
// id lookup is exercised in this core; upstream collaborators resolve email
// logins through the same directory.

type IUserDirectory interface {
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	ListProviders(ctx context.Context) ([]entities.User, error)
}

// INotificationRepository abstracts the in-app notification store.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error)
}

// IReviewRepository persists the thin review records this core links onto
// jobs.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	GetByID(ctx context.Context, id string) (entities.Review, error)
}
