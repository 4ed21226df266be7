package models

import "time"

// Booking is the trip reservation created when a booking line settles for an
// identified customer. POS bookings are born confirmed and paid.
type Booking struct {
	ID            int64     `json:"id"`
	BookingNumber string    `json:"booking_number"`
	TransactionID string    `json:"transaction_id"`
	TripID        int64     `json:"trip_id"`
	CustomerID    int64     `json:"customer_id"`
	TourName      string    `json:"tour_name"`
	Participants  int       `json:"participants"`
	Subtotal      int64     `json:"subtotal_cents"`
	Total         int64     `json:"total_cents"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}

const (
	BookingStatusConfirmed = "confirmed"
	BookingPaymentPaid     = "paid"
	BookingSourcePOS       = "pos"
)
