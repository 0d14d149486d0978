package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment processor (e.g. Mercado
// Pago).
//
// Capture triggers capture of an authorized payment intent by its opaque
// reference. Double-capture protection lives in the processor's own
// idempotency on that reference; this service never re-implements it.
type IPaymentGateway interface {
	Capture(ctx context.Context, paymentIntentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
