package models

import "time"

const (
	RentalStatusActive   = "active"
	RentalStatusReturned = "returned"
	RentalStatusOverdue  = "overdue"
)

// Rental is the agreement created alongside a sale when a rental line is
// settled for an identified customer. Return/overdue transitions are handled
// by the rental-return flow, not the settlement engine.
type Rental struct {
	ID              int64     `json:"id"`
	TransactionID   string    `json:"transaction_id"`
	AgreementNumber string    `json:"agreement_number"`
	CustomerID      int64     `json:"customer_id"`
	EquipmentID     int64     `json:"equipment_id"`
	Days            int       `json:"days"`
	DueAt           time.Time `json:"due_at"`
	DailyRate       int64     `json:"daily_rate_cents"`
	TotalCharge     int64     `json:"total_charge_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
