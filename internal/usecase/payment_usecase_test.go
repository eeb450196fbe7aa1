package usecase

import (
	"context"
	"errors"
	"testing"

	"thikana_backend/internal/domain/entities"
	mock_interfaces "thikana_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validPaymentDraft() entities.Payment {
	return entities.Payment{
		UserEmail:       "rahim@example.com",
		Amount:          12000,
		Month:           "January",
		PaymentIntentID: "pi_123",
		ApartmentNo:     "B-301",
		BlockName:       "B",
		FloorNo:         "3",
	}
}

func TestPaymentUseCase_Record(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		draft := validPaymentDraft()
		draft.UserEmail = "  "
		_, err := uc.Record(context.Background(), draft)
		if !errors.Is(err, ErrMissingPaymentFields) {
			t.Fatalf("expected ErrMissingPaymentFields, got %v", err)
		}
	})

	t.Run("missing month", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		draft := validPaymentDraft()
		draft.Month = ""
		_, err := uc.Record(context.Background(), draft)
		if !errors.Is(err, ErrMissingPaymentFields) {
			t.Fatalf("expected ErrMissingPaymentFields, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		draft := validPaymentDraft()
		draft.Amount = 0
		_, err := uc.Record(context.Background(), draft)
		if !errors.Is(err, ErrMissingPaymentFields) {
			t.Fatalf("expected ErrMissingPaymentFields, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.CreatedAt.IsZero() {
					t.Fatalf("expected created timestamp")
				}
				return p, nil
			},
		)

		res, err := uc.Record(context.Background(), validPaymentDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentIntentID != "pi_123" {
			t.Fatalf("unexpected payment: %+v", res)
		}
	})

	t.Run("retried intent id appends a second row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		seen := map[string]bool{}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if seen[p.ID] {
					t.Fatalf("duplicate ledger id %s", p.ID)
				}
				seen[p.ID] = true
				return p, nil
			},
		)

		first, err := uc.Record(context.Background(), validPaymentDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Record(context.Background(), validPaymentDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID == second.ID {
			t.Fatalf("expected distinct ledger rows")
		}
	})
}

func TestPaymentUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any(), "rahim@example.com").Return([]entities.Payment{{ID: "p-1"}}, nil)

	res, err := uc.List(context.Background(), " rahim@example.com ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].ID != "p-1" {
		t.Fatalf("unexpected payments: %+v", res)
	}
}

func TestPaymentUseCase_CreateCheckoutSession(t *testing.T) {
	t.Run("no gateway configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.CreateCheckoutSession(context.Background(), entities.CheckoutRequest{Amount: 100})
		if !errors.Is(err, ErrPaymentGatewayFailure) {
			t.Fatalf("expected ErrPaymentGatewayFailure, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gw)

		_, err := uc.CreateCheckoutSession(context.Background(), entities.CheckoutRequest{Amount: 0})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("gateway failure stays opaque", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gw)

		gw.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("provider rejected key"))

		_, err := uc.CreateCheckoutSession(context.Background(), entities.CheckoutRequest{Amount: 100, UserEmail: "rahim@example.com"})
		if !errors.Is(err, ErrPaymentGatewayFailure) {
			t.Fatalf("expected ErrPaymentGatewayFailure, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gw)

		gw.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{ID: "sess-1", InitPoint: "https://pay.example/sess-1"}, nil)

		session, err := uc.CreateCheckoutSession(context.Background(), entities.CheckoutRequest{Amount: 100, UserEmail: "rahim@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.ID != "sess-1" {
			t.Fatalf("unexpected session: %+v", session)
		}
	})
}

func TestPaymentUseCase_CreatePaymentIntent(t *testing.T) {
	t.Run("non positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gw)

		_, err := uc.CreatePaymentIntent(context.Background(), -5, "rahim@example.com")
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gw)

		gw.EXPECT().CreatePaymentIntent(gomock.Any(), 12000.0, "rahim@example.com").Return(entities.PaymentIntent{ID: "pi_1", Status: "approved"}, nil)

		intent, err := uc.CreatePaymentIntent(context.Background(), 12000, "rahim@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.ID != "pi_1" || intent.Status != "approved" {
			t.Fatalf("unexpected intent: %+v", intent)
		}
	})
}
