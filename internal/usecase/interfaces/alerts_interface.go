package interfaces

import (
	"context"

	"tradeportal/internal/domain/entities"
)

// IEmailSender is the outbound email collaborator. Delivery is external to
// this core; implementations are best-effort and callers must treat every
// send as at-most-once.

type IEmailSender interface {
	SendNewJobAlertEmail(ctx context.Context, provider entities.User, job entities.Job) error
}

// ISMSSender sends the optional SMS alert for emergency/urgent jobs.

type ISMSSender interface {
	SendNewJobAlertSMS(ctx context.Context, provider entities.User, job entities.Job) error
}

// ITokenStore is a one-time token store used by the test-harness auth path.
// Check reports whether a token exists without consuming it; Consume removes
// it and returns the subject it was created for.
type ITokenStore interface {
	Create(ctx context.Context, token, subject string) error
	Check(ctx context.Context, token string) (bool, error)
	Consume(ctx context.Context, token string) (string, error)
}
