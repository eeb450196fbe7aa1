package entities

import "time"

// Coupon is a discount code. Codes are expected to be unique by the operators
// managing them, but uniqueness is not enforced by the store.

type Coupon struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Discount    float64   `json:"discount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
