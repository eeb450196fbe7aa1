package interfaces

import (
	"context"

	"thikana_backend/internal/domain/entities"
)

// ICouponRepository abstracts DynamoDB persistence for Coupon.
//
// Update returns the zero-value Coupon and Delete returns a zero count when the
// id does not match an existing record.

type ICouponRepository interface {
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	Update(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	Delete(ctx context.Context, id string) (deleted int, err error)
	// List returns coupons newest first, optionally filtered by exact code.
	List(ctx context.Context, code string) ([]entities.Coupon, error)
}
