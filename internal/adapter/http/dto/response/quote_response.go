package response

import (
	"time"

	"tradeportal/internal/domain/entities"
)

type QuoteResponse struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	TradespersonID string    `json:"tradesperson_id"`
	Price          float64   `json:"price"`
	DepositAmount  *float64  `json:"deposit_amount,omitempty"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		JobID:          q.JobID,
		TradespersonID: q.TradespersonID,
		Price:          q.Price,
		DepositAmount:  q.DepositAmount,
		Description:    q.Description,
		CreatedAt:      q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteTemplateResponse struct {
	ID              string    `json:"id"`
	OwnerUserID     string    `json:"owner_user_id"`
	BusinessID      string    `json:"business_id,omitempty"`
	Scope           string    `json:"scope"`
	Category        string    `json:"category"`
	Unit            string    `json:"unit"`
	DefaultQuantity float64   `json:"default_quantity"`
	UnitPrice       float64   `json:"unit_price"`
	VATRate         float64   `json:"vat_rate"`
	IsArchived      bool      `json:"is_archived"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromQuoteTemplate(t entities.QuoteTemplate) QuoteTemplateResponse {
	return QuoteTemplateResponse{
		ID:              t.ID,
		OwnerUserID:     t.OwnerUserID,
		BusinessID:      t.BusinessID,
		Scope:           string(t.Scope),
		Category:        t.Category,
		Unit:            t.Unit,
		DefaultQuantity: t.DefaultQuantity,
		UnitPrice:       t.UnitPrice,
		VATRate:         t.VATRate,
		IsArchived:      t.IsArchived,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func FromQuoteTemplates(templates []entities.QuoteTemplate) []QuoteTemplateResponse {
	out := make([]QuoteTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, FromQuoteTemplate(t))
	}
	return out
}
