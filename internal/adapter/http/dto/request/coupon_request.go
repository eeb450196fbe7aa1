package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidCouponDiscount = errors.New("invalid coupon discount")

// CouponRequest is the create/update payload for discount codes.
//
// Discount arrives as a JSON number or a numeric string depending on the
// client form; json.Number absorbs both and ResolveDiscount coerces it.
type CouponRequest struct {
	Code        string      `json:"code"`
	Discount    json.Number `json:"discount"`
	Description string      `json:"description"`
}

func (r CouponRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}

func (r CouponRequest) ResolveDiscount() (float64, error) {
	if strings.TrimSpace(r.Discount.String()) == "" {
		return 0, ErrInvalidCouponDiscount
	}
	v, err := r.Discount.Float64()
	if err != nil || v <= 0 {
		return 0, ErrInvalidCouponDiscount
	}
	return v, nil
}
