package response

import (
	"time"

	"thikana_backend/internal/domain/entities"
)

type PaymentResponse struct {
	ID              string    `json:"id"`
	UserEmail       string    `json:"userEmail"`
	Amount          float64   `json:"amount"`
	Month           string    `json:"month"`
	PaymentIntentID string    `json:"paymentIntentId"`
	ApartmentNo     string    `json:"apartmentNo,omitempty"`
	BlockName       string    `json:"blockName,omitempty"`
	FloorNo         string    `json:"floorNo,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		UserEmail:       p.UserEmail,
		Amount:          p.Amount,
		Month:           p.Month,
		PaymentIntentID: p.PaymentIntentID,
		ApartmentNo:     p.ApartmentNo,
		BlockName:       p.BlockName,
		FloorNo:         p.FloorNo,
		CreatedAt:       p.CreatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type PaymentRecordedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type CheckoutSessionResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"initPoint,omitempty"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{ID: s.ID, InitPoint: s.InitPoint}
}

type PaymentIntentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

func FromPaymentIntent(i entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{ID: i.ID, Status: i.Status}
}
