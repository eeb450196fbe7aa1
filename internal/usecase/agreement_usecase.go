package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAgreementNotFound         = errors.New("agreement not found")
	ErrDuplicatePendingAgreement = errors.New("pending agreement already exists")
	ErrMemberNotFound            = errors.New("member not found")
	ErrInvalidEmail              = errors.New("invalid email")
	ErrInvalidAgreementDraft     = errors.New("invalid agreement draft")
)

// AcceptResult carries the per-store modification counts of an acceptance.
// Both writes run in one transaction, so the counts move together: 1/1 on the
// winning call, 0/0 when no pending agreement matched.
type AcceptResult struct {
	AgreementModified int
	DirectoryModified int
}

// IAgreementUseCase exposes the tenancy-agreement lifecycle.
//
// Lifecycle: Apply creates a pending agreement; Accept and Reject race over the
// pending status with at most one winner; RemoveMember reverts an accepted
// member back to a plain user. Agreements are never deleted here.

type IAgreementUseCase interface {
	Apply(ctx context.Context, draft entities.Agreement) (entities.Agreement, error)
	Accept(ctx context.Context, email string) (AcceptResult, error)
	Reject(ctx context.Context, email string) (int, error)
	RemoveMember(ctx context.Context, email string) error
	GetByEmail(ctx context.Context, email string) (entities.Agreement, error)
	List(ctx context.Context) ([]entities.Agreement, error)
}

type AgreementUseCase struct {
	repo interfaces.IAgreementRepository
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

func NewAgreementUseCase(repo interfaces.IAgreementRepository) *AgreementUseCase {
	return &AgreementUseCase{repo: repo}
}

func (u *AgreementUseCase) Apply(ctx context.Context, draft entities.Agreement) (entities.Agreement, error) {
	draft.UserEmail = strings.TrimSpace(draft.UserEmail)
	draft.UserName = strings.TrimSpace(draft.UserName)
	if draft.UserEmail == "" {
		return entities.Agreement{}, ErrInvalidEmail
	}
	if draft.UserName == "" || draft.ApartmentNo == "" {
		return entities.Agreement{}, ErrInvalidAgreementDraft
	}

	// Fast path: reject a duplicate application before touching the store.
	// The repository's conditional insert still closes the race window.
	if existing, err := u.repo.GetByEmail(ctx, draft.UserEmail); err != nil {
		return entities.Agreement{}, err
	} else if existing.UserEmail != "" && existing.Status == entities.AgreementStatusPending {
		return entities.Agreement{}, ErrDuplicatePendingAgreement
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = entities.AgreementStatusPending
	draft.Role = entities.UserRoleUser
	draft.CreatedAt = now
	draft.UpdatedAt = now

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.Agreement{}, err
	}
	if created.UserEmail == "" {
		return entities.Agreement{}, ErrDuplicatePendingAgreement
	}
	return created, nil
}

// Accept moves the pending agreement for email to checked/member and syncs the
// user directory entry. A zero-count result is a no-op, not an error: of
// concurrent Accept/Reject calls against the same pending record, exactly one
// observes a match.
func (u *AgreementUseCase) Accept(ctx context.Context, email string) (AcceptResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return AcceptResult{}, ErrInvalidEmail
	}

	agreementModified, directoryModified, err := u.repo.AcceptPending(ctx, email)
	if err != nil {
		return AcceptResult{}, err
	}
	return AcceptResult{AgreementModified: agreementModified, DirectoryModified: directoryModified}, nil
}

// Reject moves the pending agreement to checked without touching the role.
func (u *AgreementUseCase) Reject(ctx context.Context, email string) (int, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return 0, ErrInvalidEmail
	}
	return u.repo.RejectPending(ctx, email)
}

// RemoveMember reverts an accepted member to a plain user on the agreement and
// in the user directory.
func (u *AgreementUseCase) RemoveMember(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}

	modified, err := u.repo.DemoteMember(ctx, email)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (u *AgreementUseCase) GetByEmail(ctx context.Context, email string) (entities.Agreement, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Agreement{}, ErrInvalidEmail
	}

	a, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.UserEmail == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return a, nil
}

func (u *AgreementUseCase) List(ctx context.Context) ([]entities.Agreement, error) {
	return u.repo.List(ctx)
}
