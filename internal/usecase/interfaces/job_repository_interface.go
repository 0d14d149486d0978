package interfaces

import (
	"context"

	"tradeportal/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Patch applies only the fields present in the JobPatch as a single merge
// write, so concurrent requests touching disjoint fields never clobber each
// other. AppendPayment appends to the payments history without reading the
// list first.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListOpen(ctx context.Context) ([]entities.Job, error)
	Patch(ctx context.Context, id string, p entities.JobPatch) (entities.Job, error)
	AppendPayment(ctx context.Context, id string, rec entities.PaymentRecord, status entities.JobPaymentStatus) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}
