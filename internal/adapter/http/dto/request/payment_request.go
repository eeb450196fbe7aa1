package request

import "strings"

// PaymentRecordRequest persists a confirmed gateway charge into the ledger.
// The gateway transaction id is stored verbatim; submitting it twice records
// two rows.
type PaymentRecordRequest struct {
	UserEmail       string  `json:"userEmail"`
	Amount          float64 `json:"amount"`
	Month           string  `json:"month"`
	PaymentIntentID string  `json:"paymentIntentId"`
	ApartmentNo     string  `json:"apartmentNo"`
	BlockName       string  `json:"blockName"`
	FloorNo         string  `json:"floorNo"`
}

// ApartmentDetails nests the unit labels inside a checkout request, matching
// the frontend payload shape.
type ApartmentDetails struct {
	ApartmentNo string `json:"apartmentNo"`
	BlockName   string `json:"blockName"`
	FloorNo     string `json:"floorNo"`
}

// CheckoutSessionRequest starts a hosted checkout at the payment provider.
type CheckoutSessionRequest struct {
	UserEmail        string           `json:"userEmail" binding:"required"`
	Amount           float64          `json:"amount" binding:"required"`
	Month            string           `json:"month" binding:"required"`
	ApartmentDetails ApartmentDetails `json:"apartmentDetails"`
}

// PaymentIntentRequest starts an in-app payment at the provider.
type PaymentIntentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Email  string  `json:"email" binding:"required"`
}

func (r CheckoutSessionRequest) ResolveEmail() string {
	return strings.TrimSpace(r.UserEmail)
}
