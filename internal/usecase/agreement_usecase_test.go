package usecase

import (
	"context"
	"errors"
	"testing"

	"thikana_backend/internal/domain/entities"
	mock_interfaces "thikana_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validDraft() entities.Agreement {
	return entities.Agreement{
		UserName:    "Rahim Uddin",
		UserEmail:   "rahim@example.com",
		FloorNo:     "3",
		BlockName:   "B",
		ApartmentNo: "B-301",
		Rent:        12000,
	}
}

func TestAgreementUseCase_Apply(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewAgreementUseCase(nil)
		draft := validDraft()
		draft.UserEmail = "   "
		_, err := uc.Apply(context.Background(), draft)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewAgreementUseCase(nil)
		draft := validDraft()
		draft.UserName = ""
		_, err := uc.Apply(context.Background(), draft)
		if !errors.Is(err, ErrInvalidAgreementDraft) {
			t.Fatalf("expected ErrInvalidAgreementDraft, got %v", err)
		}
	})

	t.Run("pending agreement already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{
			UserEmail: "rahim@example.com",
			Status:    entities.AgreementStatusPending,
		}, nil)

		_, err := uc.Apply(context.Background(), validDraft())
		if !errors.Is(err, ErrDuplicatePendingAgreement) {
			t.Fatalf("expected ErrDuplicatePendingAgreement, got %v", err)
		}
	})

	t.Run("repo get by email error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{}, errors.New("db"))

		_, err := uc.Apply(context.Background(), validDraft())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("reapply after checked agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{
			UserEmail: "rahim@example.com",
			Status:    entities.AgreementStatusChecked,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Agreement{})).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				return a, nil
			},
		)

		res, err := uc.Apply(context.Background(), validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.AgreementStatusPending {
			t.Fatalf("expected pending status, got %s", res.Status)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Agreement{})).DoAndReturn(
			func(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
				if a.ID == "" {
					t.Fatalf("expected generated id")
				}
				if a.Status != entities.AgreementStatusPending || a.Role != entities.UserRoleUser {
					t.Fatalf("unexpected agreement: %+v", a)
				}
				if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return a, nil
			},
		)

		res, err := uc.Apply(context.Background(), validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.UserEmail != "rahim@example.com" || res.Rent != 12000 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("create loses conditional insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Agreement{}, nil)

		_, err := uc.Apply(context.Background(), validDraft())
		if !errors.Is(err, ErrDuplicatePendingAgreement) {
			t.Fatalf("expected ErrDuplicatePendingAgreement, got %v", err)
		}
	})
}

func TestAgreementUseCase_Accept(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewAgreementUseCase(nil)
		_, err := uc.Accept(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("winner gets both counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().AcceptPending(gomock.Any(), "rahim@example.com").Return(1, 1, nil)

		res, err := uc.Accept(context.Background(), "rahim@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AgreementModified != 1 || res.DirectoryModified != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no pending agreement is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().AcceptPending(gomock.Any(), "rahim@example.com").Return(0, 0, nil)

		res, err := uc.Accept(context.Background(), "rahim@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AgreementModified != 0 || res.DirectoryModified != 0 {
			t.Fatalf("expected zero counts, got %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().AcceptPending(gomock.Any(), "rahim@example.com").Return(0, 0, errors.New("db"))

		_, err := uc.Accept(context.Background(), "rahim@example.com")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAgreementUseCase_Reject(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewAgreementUseCase(nil)
		_, err := uc.Reject(context.Background(), "")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("count passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().RejectPending(gomock.Any(), "rahim@example.com").Return(1, nil)

		count, err := uc.Reject(context.Background(), " rahim@example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected count 1, got %d", count)
		}
	})
}

func TestAgreementUseCase_RemoveMember(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewAgreementUseCase(nil)
		err := uc.RemoveMember(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("not a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().DemoteMember(gomock.Any(), "rahim@example.com").Return(0, nil)

		err := uc.RemoveMember(context.Background(), "rahim@example.com")
		if !errors.Is(err, ErrMemberNotFound) {
			t.Fatalf("expected ErrMemberNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().DemoteMember(gomock.Any(), "rahim@example.com").Return(1, nil)

		if err := uc.RemoveMember(context.Background(), "rahim@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAgreementUseCase_GetByEmail(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewAgreementUseCase(nil)
		_, err := uc.GetByEmail(context.Background(), "")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{}, nil)

		_, err := uc.GetByEmail(context.Background(), "rahim@example.com")
		if !errors.Is(err, ErrAgreementNotFound) {
			t.Fatalf("expected ErrAgreementNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{
			ID:        "a-1",
			UserEmail: "rahim@example.com",
		}, nil)

		res, err := uc.GetByEmail(context.Background(), "rahim@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "a-1" {
			t.Fatalf("unexpected agreement: %+v", res)
		}
	})
}
