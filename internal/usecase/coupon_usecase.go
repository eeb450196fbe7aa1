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
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrInvalidCouponID    = errors.New("invalid coupon id")
	ErrInvalidCouponInput = errors.New("invalid coupon input")
)

// ICouponUseCase exposes discount-code CRUD. Coupons are independent of the
// payment ledger; nothing here checks whether a code was ever redeemed.

type ICouponUseCase interface {
	Create(ctx context.Context, code string, discount float64, description string) (entities.Coupon, error)
	Update(ctx context.Context, id, code string, discount float64, description string) (entities.Coupon, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, code string) ([]entities.Coupon, error)
}

type CouponUseCase struct {
	repo interfaces.ICouponRepository
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository) *CouponUseCase {
	return &CouponUseCase{repo: repo}
}

func (u *CouponUseCase) Create(ctx context.Context, code string, discount float64, description string) (entities.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" || discount <= 0 {
		return entities.Coupon{}, ErrInvalidCouponInput
	}

	c := entities.Coupon{
		ID:          uuid.NewString(),
		Code:        code,
		Discount:    discount,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CouponUseCase) Update(ctx context.Context, id, code string, discount float64, description string) (entities.Coupon, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Coupon{}, ErrInvalidCouponID
	}
	code = strings.TrimSpace(code)
	if code == "" || discount <= 0 {
		return entities.Coupon{}, ErrInvalidCouponInput
	}

	updated, err := u.repo.Update(ctx, entities.Coupon{
		ID:          id,
		Code:        code,
		Discount:    discount,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if updated.ID == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}
	return updated, nil
}

func (u *CouponUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCouponID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (u *CouponUseCase) List(ctx context.Context, code string) ([]entities.Coupon, error) {
	return u.repo.List(ctx, strings.TrimSpace(code))
}
