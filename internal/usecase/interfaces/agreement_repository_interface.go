package interfaces

import (
	"context"

	"thikana_backend/internal/domain/entities"
)

// IAgreementRepository abstracts DynamoDB persistence for Agreement.
//
// The conditional-write methods return modification counts instead of errors
// for the no-match case: a zero count means no record satisfied the condition,
// which mirrors the store's conditional-check semantics and keeps the
// one-winner guarantee observable by callers.
//
// AcceptPending and DemoteMember also sync the user directory role; both writes
// run inside a single TransactWriteItems so the directory can never go stale
// between them.

type IAgreementRepository interface {
	// Create inserts the agreement unless a pending one already exists for the
	// same email. The zero-value Agreement is returned when the conditional
	// insert lost to an existing pending record.
	Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	GetByEmail(ctx context.Context, email string) (entities.Agreement, error)
	List(ctx context.Context) ([]entities.Agreement, error)
	AcceptPending(ctx context.Context, email string) (agreementModified, directoryModified int, err error)
	RejectPending(ctx context.Context, email string) (modified int, err error)
	DemoteMember(ctx context.Context, email string) (modified int, err error)
}
