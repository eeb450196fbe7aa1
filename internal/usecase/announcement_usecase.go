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

var ErrInvalidAnnouncementInput = errors.New("invalid announcement input")

// IAnnouncementUseCase exposes the community notice board: anyone can read it,
// posting requires both a title and a description.

type IAnnouncementUseCase interface {
	Create(ctx context.Context, title, description string) (entities.Announcement, error)
	List(ctx context.Context) ([]entities.Announcement, error)
}

type AnnouncementUseCase struct {
	repo interfaces.IAnnouncementRepository
}

var _ IAnnouncementUseCase = (*AnnouncementUseCase)(nil)

func NewAnnouncementUseCase(repo interfaces.IAnnouncementRepository) *AnnouncementUseCase {
	return &AnnouncementUseCase{repo: repo}
}

func (u *AnnouncementUseCase) Create(ctx context.Context, title, description string) (entities.Announcement, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return entities.Announcement{}, ErrInvalidAnnouncementInput
	}

	a := entities.Announcement{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, a)
}

func (u *AnnouncementUseCase) List(ctx context.Context) ([]entities.Announcement, error) {
	return u.repo.List(ctx)
}
