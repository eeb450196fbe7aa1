package usecase

import (
	"context"
	"strings"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"
)

// IRoleUseCase answers "what is this user's role".
//
// The agreement is the authoritative source. The user directory entry written
// on acceptance is a cache for other consumers and is never read here; anyone
// without an agreement is a plain user.

type IRoleUseCase interface {
	GetRole(ctx context.Context, email string) (entities.UserRole, error)
}

type RoleUseCase struct {
	agreements interfaces.IAgreementRepository
}

var _ IRoleUseCase = (*RoleUseCase)(nil)

func NewRoleUseCase(agreements interfaces.IAgreementRepository) *RoleUseCase {
	return &RoleUseCase{agreements: agreements}
}

func (u *RoleUseCase) GetRole(ctx context.Context, email string) (entities.UserRole, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidEmail
	}

	a, err := u.agreements.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if a.UserEmail == "" || a.Role == "" {
		return entities.UserRoleUser, nil
	}
	return a.Role, nil
}
