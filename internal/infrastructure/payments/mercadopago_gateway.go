package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentIntentReference = errors.New("invalid payment intent reference")

// MercadoPagoGateway triggers capture of authorized payment intents against
// Mercado Pago. Double-capture protection is the provider's own idempotency
// on the intent reference; the gateway just relays the call.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Capture(ctx context.Context, paymentIntentID string) (providerStatus string, providerResponse json.RawMessage, err error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	if paymentIntentID == "" {
		return "", nil, ErrInvalidPaymentIntentReference
	}

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock capture intent=%s", paymentIntentID)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		b, mErr := json.Marshal(map[string]any{
			"id":            paymentIntentID,
			"status":        "approved",
			"status_detail": "accredited",
			"captured":      true,
			"date_approved": now,
		})
		if mErr != nil {
			return "", nil, mErr
		}
		return "approved", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentIntentID)
	if err != nil {
		log.Printf("[payment][gateway] non-numeric intent reference intent=%s", paymentIntentID)
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidPaymentIntentReference, paymentIntentID)
	}

	log.Printf("[payment][gateway] capture start intent=%s", paymentIntentID)
	resp, err := g.client.Capture(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk capture failed intent=%s err=%v", paymentIntentID, err)
		return "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", nil, err
	}
	log.Printf("[payment][gateway] capture success intent=%s provider_status=%s", paymentIntentID, resp.Status)

	return resp.Status, b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
