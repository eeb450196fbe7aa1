package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingPaymentFields  = errors.New("missing required payment fields")
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrPaymentGatewayFailure = errors.New("payment gateway failure")
)

// IPaymentUseCase covers the rent payment ledger plus gateway delegation.
//
// Record/List own the append-only ledger. CreateCheckoutSession and
// CreatePaymentIntent only forward to the provider; the resulting charge is
// recorded later by the client via Record, so a gateway call that succeeds but
// is never confirmed leaves no ledger row.

type IPaymentUseCase interface {
	Record(ctx context.Context, draft entities.Payment) (entities.Payment, error)
	List(ctx context.Context, email string) ([]entities.Payment, error)
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	CreatePaymentIntent(ctx context.Context, amount float64, email string) (entities.PaymentIntent, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

// Record appends a ledger row unconditionally. There is no deduplication on the
// gateway transaction id: a retried submission produces a second distinct row.
func (u *PaymentUseCase) Record(ctx context.Context, draft entities.Payment) (entities.Payment, error) {
	draft.UserEmail = strings.TrimSpace(draft.UserEmail)
	draft.Month = strings.TrimSpace(draft.Month)
	draft.PaymentIntentID = strings.TrimSpace(draft.PaymentIntentID)
	if draft.UserEmail == "" || draft.Month == "" || draft.PaymentIntentID == "" {
		return entities.Payment{}, ErrMissingPaymentFields
	}
	if draft.Amount <= 0 {
		return entities.Payment{}, ErrMissingPaymentFields
	}

	draft.ID = uuid.NewString()
	draft.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] recorded payment id=%s email=%s month=%s intent=%s", created.ID, created.UserEmail, created.Month, created.PaymentIntentID)
	return created, nil
}

func (u *PaymentUseCase) List(ctx context.Context, email string) ([]entities.Payment, error) {
	return u.repo.List(ctx, strings.TrimSpace(email))
}

func (u *PaymentUseCase) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if u.gateway == nil {
		return entities.CheckoutSession{}, ErrPaymentGatewayFailure
	}
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	if req.Amount <= 0 {
		return entities.CheckoutSession{}, ErrInvalidPaymentAmount
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		// The provider message stays server-side; callers get an opaque failure.
		log.Printf("[payment][usecase] checkout session failed email=%s err=%v", req.UserEmail, err)
		return entities.CheckoutSession{}, ErrPaymentGatewayFailure
	}
	log.Printf("[payment][usecase] checkout session created email=%s session_id=%s", req.UserEmail, session.ID)
	return session, nil
}

func (u *PaymentUseCase) CreatePaymentIntent(ctx context.Context, amount float64, email string) (entities.PaymentIntent, error) {
	if u.gateway == nil {
		return entities.PaymentIntent{}, ErrPaymentGatewayFailure
	}
	if amount <= 0 {
		return entities.PaymentIntent{}, ErrInvalidPaymentAmount
	}

	intent, err := u.gateway.CreatePaymentIntent(ctx, amount, strings.TrimSpace(email))
	if err != nil {
		log.Printf("[payment][usecase] payment intent failed email=%s err=%v", email, err)
		return entities.PaymentIntent{}, ErrPaymentGatewayFailure
	}
	log.Printf("[payment][usecase] payment intent created email=%s intent_id=%s status=%s", email, intent.ID, intent.Status)
	return intent, nil
}
