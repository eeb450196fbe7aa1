package entities

// Gateway-facing types. The checkout/intent computation itself belongs to the
// payment provider; the service only forwards these values and persists the
// resulting ledger record on confirmation.

type CheckoutRequest struct {
	UserEmail   string
	Amount      float64
	Month       string
	ApartmentNo string
	BlockName   string
	FloorNo     string
}

// CheckoutSession identifies a hosted checkout started at the provider.
// InitPoint is the URL the client is redirected to.

type CheckoutSession struct {
	ID        string `json:"id"`
	InitPoint string `json:"initPoint,omitempty"`
}

// PaymentIntent is the provider-side charge created for an in-app payment flow.

type PaymentIntent struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}
