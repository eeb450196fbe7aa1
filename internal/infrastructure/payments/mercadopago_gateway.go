package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements the payment gateway on Mercado Pago.
//
// A rent checkout maps to a checkout preference (hosted page, init point URL);
// an in-app payment maps to a direct payment. Mock mode skips the provider and
// fabricates approved responses, which keeps local development offline.

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

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

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock checkout session id=%s email=%s", id, req.UserEmail)
		return entities.CheckoutSession{ID: id}, nil
	}
	if g == nil || g.preferences == nil {
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	successURL := getenvDefault("CHECKOUT_SUCCESS_URL", "http://localhost:5173/payment-success")
	cancelURL := getenvDefault("CHECKOUT_CANCEL_URL", "http://localhost:5173/payment-cancelled")

	resp, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("Rent for %s (%s)", req.ApartmentNo, req.Month),
				Description: fmt.Sprintf("Block: %s, Floor: %s", req.BlockName, req.FloorNo),
				Quantity:    1,
				UnitPrice:   req.Amount,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: fmt.Sprintf("%s?email=%s", successURL, req.UserEmail),
			Failure: cancelURL,
		},
		ExternalReference: req.UserEmail,
		Metadata: map[string]any{
			"email":     req.UserEmail,
			"month":     req.Month,
			"apartment": req.ApartmentNo,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] checkout preference failed err=%v", err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[payment][gateway] checkout preference created id=%s", resp.ID)

	return entities.CheckoutSession{ID: resp.ID, InitPoint: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) CreatePaymentIntent(ctx context.Context, amount float64, email string) (entities.PaymentIntent, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock payment intent id=%s email=%s", id, email)
		return entities.PaymentIntent{ID: id, Status: "approved"}, nil
	}
	if g == nil || g.payments == nil {
		return entities.PaymentIntent{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: amount,
		Description:       "Monthly rent payment",
		Payer: &payment.PayerRequest{
			Email: email,
		},
		Metadata: map[string]any{
			"email": email,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] payment create failed err=%v", err)
		return entities.PaymentIntent{}, err
	}
	log.Printf("[payment][gateway] payment created provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.PaymentIntent{ID: fmt.Sprintf("%d", resp.ID), Status: resp.Status}, nil
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

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
