package request

import (
	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"
)

type CapturePaymentRequest struct {
	Type string `json:"type" binding:"required"`
}

// ProcessorEventRequest is the processor-originated settlement callback.
// The payment_intent_id must match the reference stored on the job.
type ProcessorEventRequest struct {
	JobID           string  `json:"job_id" binding:"required"`
	Type            string  `json:"type" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	PaymentIntentID string  `json:"payment_intent_id" binding:"required"`
	ReceiptURL      string  `json:"receipt_url"`
}

func (r ProcessorEventRequest) ToEvent() usecase.ProcessorEvent {
	return usecase.ProcessorEvent{
		JobID:           r.JobID,
		Type:            entities.PaymentType(r.Type),
		Amount:          r.Amount,
		PaymentIntentID: r.PaymentIntentID,
		ReceiptURL:      r.ReceiptURL,
	}
}
