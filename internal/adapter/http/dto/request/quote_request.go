package request

import (
	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"
)

type CreateQuoteRequest struct {
	Price         float64  `json:"price" binding:"required"`
	DepositAmount *float64 `json:"deposit_amount"`
	Description   string   `json:"description"`
}

func (r CreateQuoteRequest) ToInput(jobID string) usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		JobID:         jobID,
		Price:         r.Price,
		DepositAmount: r.DepositAmount,
		Description:   r.Description,
	}
}

type CreateTemplateRequest struct {
	Scope           string  `json:"scope"`
	Category        string  `json:"category" binding:"required"`
	Unit            string  `json:"unit" binding:"required"`
	DefaultQuantity float64 `json:"default_quantity"`
	UnitPrice       float64 `json:"unit_price" binding:"required"`
	VATRate         float64 `json:"vat_rate"`
}

func (r CreateTemplateRequest) ToInput() usecase.CreateTemplateInput {
	scope := entities.TemplateScope(r.Scope)
	if scope == "" {
		scope = entities.ScopePersonal
	}
	return usecase.CreateTemplateInput{
		Scope:           scope,
		Category:        r.Category,
		Unit:            r.Unit,
		DefaultQuantity: r.DefaultQuantity,
		UnitPrice:       r.UnitPrice,
		VATRate:         r.VATRate,
	}
}

// UpdateTemplateRequest carries a partial template update; absent fields
// stay untouched.
type UpdateTemplateRequest struct {
	Category        *string  `json:"category"`
	Unit            *string  `json:"unit"`
	DefaultQuantity *float64 `json:"default_quantity"`
	UnitPrice       *float64 `json:"unit_price"`
	VATRate         *float64 `json:"vat_rate"`
}

func (r UpdateTemplateRequest) ToPatch() entities.QuoteTemplatePatch {
	return entities.QuoteTemplatePatch{
		Category:        r.Category,
		Unit:            r.Unit,
		DefaultQuantity: r.DefaultQuantity,
		UnitPrice:       r.UnitPrice,
		VATRate:         r.VATRate,
	}
}
