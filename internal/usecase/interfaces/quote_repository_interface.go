package interfaces

import (
	"context"

	"tradeportal/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Quote, error)
}

// IQuoteTemplateRepository abstracts DynamoDB persistence for QuoteTemplate.
//
// CountActivePersonal counts non-archived personal-scope templates for an
// owner; the basic-tier limit check reads it immediately before create.

type IQuoteTemplateRepository interface {
	Create(ctx context.Context, t entities.QuoteTemplate) (entities.QuoteTemplate, error)
	GetByID(ctx context.Context, id string) (entities.QuoteTemplate, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.QuoteTemplate, error)
	CountActivePersonal(ctx context.Context, ownerID string) (int, error)
	Patch(ctx context.Context, id string, p entities.QuoteTemplatePatch) (entities.QuoteTemplate, error)
}
