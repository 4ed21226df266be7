package domain

import "posbackend/internal/utils"

// LineType discriminates the three cart-line shapes. Exactly one shape is
// active per line; repricing and settlement switch exhaustively on it.
type LineType string

const (
	LineProduct LineType = "product"
	LineRental  LineType = "rental"
	LineBooking LineType = "booking"
)

// Payment method labels recorded on a transaction.
const (
	PaymentCash  = "cash"
	PaymentCard  = "card"
	PaymentSplit = "split"
)

// CartLine is one entry of a checkout request as submitted by the client.
// Price fields are advisory only; the validator rederives every amount from
// the catalog and discards what the client sent.
type CartLine struct {
	Type LineType `json:"type"`

	ProductID int64 `json:"product_id,omitempty"`
	Quantity  int   `json:"quantity,omitempty"`

	EquipmentID int64 `json:"equipment_id,omitempty"`
	Days        int   `json:"days,omitempty"`

	TripID       int64  `json:"trip_id,omitempty"`
	Participants int    `json:"participants,omitempty"`
	TourName     string `json:"tour_name,omitempty"`

	UnitPrice float64 `json:"unit_price,omitempty"`
	Total     float64 `json:"total,omitempty"`
}

// Units returns the type-appropriate multiplier (quantity, days, participants).
func (l CartLine) Units() int {
	switch l.Type {
	case LineProduct:
		return l.Quantity
	case LineRental:
		return l.Days
	case LineBooking:
		return l.Participants
	default:
		return 0
	}
}

// TenderedPayment is one payment instrument submitted with a checkout,
// possibly one of several in a split payment.
type TenderedPayment struct {
	Method                 string  `json:"method"`
	Amount                 float64 `json:"amount"`
	ExternalConfirmationID string  `json:"external_confirmation_id,omitempty"`
}

// PricedLine is the server-derived snapshot of a validated cart line. It is
// what gets serialized onto the transaction for audit and receipt rendering.
type PricedLine struct {
	Type        LineType    `json:"type"`
	ProductID   int64       `json:"product_id,omitempty"`
	EquipmentID int64       `json:"equipment_id,omitempty"`
	TripID      int64       `json:"trip_id,omitempty"`
	Description string      `json:"description"`
	TourName    string      `json:"tour_name,omitempty"`
	Units       int         `json:"units"`
	UnitPrice   utils.Cents `json:"unit_price_cents"`
	Total       utils.Cents `json:"total_cents"`
}

// ValidatedCart carries only server-derived amounts. Payment amounts have
// already been reconciled against Total.
type ValidatedCart struct {
	Lines    []PricedLine
	Subtotal utils.Cents
	Tax      utils.Cents
	Total    utils.Cents

	PaymentMethod          string
	ExternalConfirmationID string
	Payments               []TenderedPayment
}
