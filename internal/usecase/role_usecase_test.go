package usecase

import (
	"context"
	"errors"
	"testing"

	"thikana_backend/internal/domain/entities"
	mock_interfaces "thikana_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRoleUseCase_GetRole(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewRoleUseCase(nil)
		_, err := uc.GetRole(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("no agreement defaults to user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewRoleUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(entities.Agreement{}, nil)

		role, err := uc.GetRole(context.Background(), "nobody@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if role != entities.UserRoleUser {
			t.Fatalf("expected user role, got %s", role)
		}
	})

	t.Run("member role from agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewRoleUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{
			UserEmail: "rahim@example.com",
			Role:      entities.UserRoleMember,
		}, nil)

		role, err := uc.GetRole(context.Background(), "rahim@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if role != entities.UserRoleMember {
			t.Fatalf("expected member role, got %s", role)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewRoleUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "rahim@example.com").Return(entities.Agreement{}, errors.New("db"))

		_, err := uc.GetRole(context.Background(), "rahim@example.com")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
