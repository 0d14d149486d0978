package response

import (
	"encoding/json"

	"tradeportal/internal/usecase"
)

// CapturedPaymentResponse relays the processor's capture result untouched;
// the job's payment_status is not part of it because capture never writes
// that field.
type CapturedPaymentResponse struct {
	JobID            string          `json:"job_id"`
	Type             string          `json:"type"`
	PaymentIntentID  string          `json:"payment_intent_id"`
	ProviderStatus   string          `json:"provider_status"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}

func FromCapturedPayment(p usecase.CapturedPayment) CapturedPaymentResponse {
	return CapturedPaymentResponse{
		JobID:            p.JobID,
		Type:             string(p.Type),
		PaymentIntentID:  p.PaymentIntentID,
		ProviderStatus:   p.ProviderStatus,
		ProviderResponse: p.ProviderResponse,
	}
}
