package models

import (
	"encoding/json"
	"time"
)

// Transaction is the settled sale record. Immutable after creation except
// for refund linkage, which lives outside this engine.
type Transaction struct {
	ID                     string          `json:"id"`
	Type                   string          `json:"type"`
	ReceiptNumber          string          `json:"receipt_number"`
	CustomerID             *int64          `json:"customer_id,omitempty"`
	UserID                 *int64          `json:"user_id,omitempty"`
	AmountTotal            int64           `json:"amount_total_cents"`
	Currency               string          `json:"currency"`
	PaymentMethod          string          `json:"payment_method"`
	ExternalConfirmationID string          `json:"external_confirmation_id,omitempty"`
	LineItems              json.RawMessage `json:"line_items"`
	Notes                  string          `json:"notes,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
}

const TransactionTypeSale = "sale"
