package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuoteInput    = errors.New("invalid quote input")
	ErrQuoteForbidden       = errors.New("not allowed to access quotes for this job")
	ErrTemplateNotFound     = errors.New("quote template not found")
	ErrTemplateForbidden    = errors.New("not allowed to modify this template")
	ErrInvalidTemplateInput = errors.New("invalid template input")
)

// TemplateLimitError is the structured LIMIT_EXCEEDED outcome: a soft
// business cap carrying current usage so the caller can offer an upgrade
// path instead of a bare rejection.
type TemplateLimitError struct {
	Used  int
	Limit int
}

func (e *TemplateLimitError) Error() string {
	return fmt.Sprintf("template limit reached: %d of %d in use", e.Used, e.Limit)
}

// CreateQuoteInput is the domain command for submitting a quote.
type CreateQuoteInput struct {
	JobID         string
	Price         float64
	DepositAmount *float64
	Description   string
}

// CreateTemplateInput is the domain command for saving a quote template.
type CreateTemplateInput struct {
	Scope           entities.TemplateScope
	Category        string
	Unit            string
	DefaultQuantity float64
	UnitPrice       float64
	VATRate         float64
}

// IQuoteUseCase creates and lists quotes and owns tier-gated quote template
// CRUD.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, actor Actor, in CreateQuoteInput) (entities.Quote, error)
	ListQuotesByJob(ctx context.Context, actor Actor, jobID string) ([]entities.Quote, error)
	CreateTemplate(ctx context.Context, actor Actor, in CreateTemplateInput) (entities.QuoteTemplate, error)
	ListTemplates(ctx context.Context, actor Actor) ([]entities.QuoteTemplate, error)
	UpdateTemplate(ctx context.Context, actor Actor, id string, patch entities.QuoteTemplatePatch) (entities.QuoteTemplate, error)
	DeleteTemplate(ctx context.Context, actor Actor, id string) error
}

type QuoteUseCase struct {
	quotes    interfaces.IQuoteRepository
	templates interfaces.IQuoteTemplateRepository
	jobs      interfaces.IJobRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, templates interfaces.IQuoteTemplateRepository, jobs interfaces.IJobRepository) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, templates: templates, jobs: jobs}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, actor Actor, in CreateQuoteInput) (entities.Quote, error) {
	if !entities.IsProvider(actor.Role) {
		return entities.Quote{}, ErrQuoteForbidden
	}
	jobID := strings.TrimSpace(in.JobID)
	if jobID == "" {
		return entities.Quote{}, fmt.Errorf("%w: missing job id", ErrInvalidQuoteInput)
	}
	if in.Price <= 0 {
		return entities.Quote{}, fmt.Errorf("%w: price must be positive", ErrInvalidQuoteInput)
	}
	if in.DepositAmount != nil && (*in.DepositAmount < 0 || *in.DepositAmount > in.Price) {
		return entities.Quote{}, fmt.Errorf("%w: deposit must be between 0 and the quote price", ErrInvalidQuoteInput)
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Quote{}, err
	}
	if job.ID == "" {
		return entities.Quote{}, ErrJobNotFound
	}

	q := entities.Quote{
		ID:             uuid.NewString(),
		JobID:          job.ID,
		TradespersonID: actor.UserID,
		Price:          in.Price,
		DepositAmount:  in.DepositAmount,
		Description:    strings.TrimSpace(in.Description),
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed job_id=%s tradesperson_id=%s err=%v", job.ID, actor.UserID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s job_id=%s price=%.2f", created.ID, created.JobID, created.Price)
	return created, nil
}

func (u *QuoteUseCase) ListQuotesByJob(ctx context.Context, actor Actor, jobID string) ([]entities.Quote, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, fmt.Errorf("%w: missing job id", ErrInvalidQuoteInput)
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ID == "" {
		return nil, ErrJobNotFound
	}
	if job.CustomerID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrQuoteForbidden
	}
	return u.quotes.ListByJobID(ctx, job.ID)
}

func (u *QuoteUseCase) CreateTemplate(ctx context.Context, actor Actor, in CreateTemplateInput) (entities.QuoteTemplate, error) {
	if !entities.IsProvider(actor.Role) {
		return entities.QuoteTemplate{}, ErrTemplateForbidden
	}
	if err := validateTemplateInput(in); err != nil {
		return entities.QuoteTemplate{}, err
	}

	businessID := ""
	switch in.Scope {
	case entities.ScopeBusiness:
		if actor.Tier != entities.TierBusiness ||
			!entities.CanAccess(actor.Role, []entities.Role{entities.RoleBusinessOwner, entities.RoleManager}) {
			return entities.QuoteTemplate{}, ErrTemplateForbidden
		}
		if actor.BusinessID == "" {
			return entities.QuoteTemplate{}, fmt.Errorf("%w: account has no business", ErrInvalidTemplateInput)
		}
		businessID = actor.BusinessID
	case entities.ScopePersonal:
		if actor.Tier == entities.TierBasic {
			used, err := u.templates.CountActivePersonal(ctx, actor.UserID)
			if err != nil {
				return entities.QuoteTemplate{}, err
			}
			if used >= entities.BasicTierTemplateLimit {
				return entities.QuoteTemplate{}, &TemplateLimitError{Used: used, Limit: entities.BasicTierTemplateLimit}
			}
		}
	default:
		return entities.QuoteTemplate{}, fmt.Errorf("%w: unknown scope %q", ErrInvalidTemplateInput, in.Scope)
	}

	now := time.Now().UTC()
	t := entities.QuoteTemplate{
		ID:              uuid.NewString(),
		OwnerUserID:     actor.UserID,
		BusinessID:      businessID,
		Scope:           in.Scope,
		Category:        strings.TrimSpace(in.Category),
		Unit:            strings.TrimSpace(in.Unit),
		DefaultQuantity: in.DefaultQuantity,
		UnitPrice:       in.UnitPrice,
		VATRate:         in.VATRate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.templates.Create(ctx, t)
	if err != nil {
		log.Printf("[quote][usecase] template create failed owner_id=%s err=%v", actor.UserID, err)
		return entities.QuoteTemplate{}, err
	}
	log.Printf("[quote][usecase] template created template_id=%s owner_id=%s scope=%s", created.ID, created.OwnerUserID, created.Scope)
	return created, nil
}

func (u *QuoteUseCase) ListTemplates(ctx context.Context, actor Actor) ([]entities.QuoteTemplate, error) {
	if !entities.IsProvider(actor.Role) {
		return nil, ErrTemplateForbidden
	}
	return u.templates.ListByOwner(ctx, actor.UserID)
}

func (u *QuoteUseCase) UpdateTemplate(ctx context.Context, actor Actor, id string, patch entities.QuoteTemplatePatch) (entities.QuoteTemplate, error) {
	t, err := u.loadTemplate(ctx, id)
	if err != nil {
		return entities.QuoteTemplate{}, err
	}
	if !entities.CanEditTemplate(t, actor.UserID, actor.Role, actor.BusinessID) {
		return entities.QuoteTemplate{}, ErrTemplateForbidden
	}
	if patch.IsZero() {
		return entities.QuoteTemplate{}, fmt.Errorf("%w: empty patch", ErrInvalidTemplateInput)
	}
	if patch.UnitPrice != nil && *patch.UnitPrice < 0 {
		return entities.QuoteTemplate{}, fmt.Errorf("%w: unit_price must not be negative", ErrInvalidTemplateInput)
	}
	if patch.VATRate != nil && (*patch.VATRate < 0 || *patch.VATRate > 100) {
		return entities.QuoteTemplate{}, fmt.Errorf("%w: vat_rate out of range", ErrInvalidTemplateInput)
	}
	updated, err := u.templates.Patch(ctx, t.ID, patch)
	if err != nil {
		return entities.QuoteTemplate{}, err
	}
	if updated.ID == "" {
		// The row vanished between load and patch.
		return entities.QuoteTemplate{}, ErrTemplateNotFound
	}
	return updated, nil
}

// DeleteTemplate archives rather than removes, preserving historical quote
// integrity. Archiving an already-archived template is a no-op, not an
// error.
func (u *QuoteUseCase) DeleteTemplate(ctx context.Context, actor Actor, id string) error {
	t, err := u.loadTemplate(ctx, id)
	if err != nil {
		return err
	}
	if !entities.CanEditTemplate(t, actor.UserID, actor.Role, actor.BusinessID) {
		return ErrTemplateForbidden
	}
	if t.IsArchived {
		return nil
	}

	archived := true
	updated, err := u.templates.Patch(ctx, t.ID, entities.QuoteTemplatePatch{IsArchived: &archived})
	if err != nil {
		log.Printf("[quote][usecase] template archive failed template_id=%s err=%v", t.ID, err)
		return err
	}
	if updated.ID == "" {
		return ErrTemplateNotFound
	}
	return nil
}

func (u *QuoteUseCase) loadTemplate(ctx context.Context, id string) (entities.QuoteTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteTemplate{}, fmt.Errorf("%w: missing template id", ErrInvalidTemplateInput)
	}
	t, err := u.templates.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteTemplate{}, err
	}
	if t.ID == "" {
		return entities.QuoteTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}

func validateTemplateInput(in CreateTemplateInput) error {
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidTemplateInput)
	}
	if strings.TrimSpace(in.Unit) == "" {
		return fmt.Errorf("%w: unit is required", ErrInvalidTemplateInput)
	}
	if in.DefaultQuantity <= 0 {
		return fmt.Errorf("%w: default_quantity must be positive", ErrInvalidTemplateInput)
	}
	if in.UnitPrice < 0 {
		return fmt.Errorf("%w: unit_price must not be negative", ErrInvalidTemplateInput)
	}
	if in.VATRate < 0 || in.VATRate > 100 {
		return fmt.Errorf("%w: vat_rate out of range", ErrInvalidTemplateInput)
	}
	return nil
}
