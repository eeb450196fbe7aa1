package entities

import "time"

// Payment is one row of the rent payment ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_email-index): user_email
//
// The ledger is append-only. PaymentIntentID is the gateway transaction
// identifier and carries no uniqueness constraint: a duplicate client
// submission produces a second distinct row.

type Payment struct {
	ID              string    `json:"id"`
	UserEmail       string    `json:"userEmail"`
	Amount          float64   `json:"amount"`
	Month           string    `json:"month"`
	PaymentIntentID string    `json:"paymentIntentId"`
	ApartmentNo     string    `json:"apartmentNo"`
	BlockName       string    `json:"blockName"`
	FloorNo         string    `json:"floorNo"`
	CreatedAt       time.Time `json:"createdAt"`
}
