package response

import (
	"time"

	"thikana_backend/internal/domain/entities"
)

type CouponResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Discount    float64   `json:"discount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromCoupon(c entities.Coupon) CouponResponse {
	return CouponResponse{
		ID:          c.ID,
		Code:        c.Code,
		Discount:    c.Discount,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func FromCoupons(coupons []entities.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, FromCoupon(c))
	}
	return out
}

type CouponCreatedResponse struct {
	Message  string `json:"message"`
	CouponID string `json:"couponId"`
}
