package interfaces

import (
	"context"

	"thikana_backend/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (e.g. Mercado Pago).
//
// The service never computes charges itself: checkout sessions and payment
// intents are created at the provider and only their identifiers come back.

type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	CreatePaymentIntent(ctx context.Context, amount float64, email string) (entities.PaymentIntent, error)
}
