package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCouponRequest_ResolveDiscount(t *testing.T) {
	t.Run("json number", func(t *testing.T) {
		var r CouponRequest
		if err := json.Unmarshal([]byte(`{"code":"EID10","discount":10}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, err := r.ResolveDiscount()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 10 {
			t.Fatalf("expected 10, got %v", v)
		}
	})

	t.Run("numeric string", func(t *testing.T) {
		var r CouponRequest
		if err := json.Unmarshal([]byte(`{"code":"EID10","discount":"12.5"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, err := r.ResolveDiscount()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 12.5 {
			t.Fatalf("expected 12.5, got %v", v)
		}
	})

	t.Run("missing discount", func(t *testing.T) {
		var r CouponRequest
		if err := json.Unmarshal([]byte(`{"code":"EID10"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := r.ResolveDiscount(); !errors.Is(err, ErrInvalidCouponDiscount) {
			t.Fatalf("expected ErrInvalidCouponDiscount, got %v", err)
		}
	})

	t.Run("non numeric string", func(t *testing.T) {
		var r CouponRequest
		if err := json.Unmarshal([]byte(`{"code":"EID10","discount":"ten"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := r.ResolveDiscount(); !errors.Is(err, ErrInvalidCouponDiscount) {
			t.Fatalf("expected ErrInvalidCouponDiscount, got %v", err)
		}
	})

	t.Run("non positive discount", func(t *testing.T) {
		var r CouponRequest
		if err := json.Unmarshal([]byte(`{"code":"EID10","discount":0}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := r.ResolveDiscount(); !errors.Is(err, ErrInvalidCouponDiscount) {
			t.Fatalf("expected ErrInvalidCouponDiscount, got %v", err)
		}
	})
}

func TestCouponRequest_ResolveCode(t *testing.T) {
	r := CouponRequest{Code: "  EID10  "}
	if got := r.ResolveCode(); got != "EID10" {
		t.Fatalf("expected trimmed code, got %q", got)
	}
}
