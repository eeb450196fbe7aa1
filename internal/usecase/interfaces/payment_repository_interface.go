package interfaces

import (
	"context"

	"thikana_backend/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for the payment ledger.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	// List returns ledger rows newest first, optionally filtered by email.
	List(ctx context.Context, email string) ([]entities.Payment, error)
}
