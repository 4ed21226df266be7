package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"posbackend/internal/domain"
	"posbackend/internal/domain/models"
	"posbackend/internal/repositories"
	"posbackend/internal/utils"
)

// SettlementResult is what the caller gets back on a committed checkout.
type SettlementResult struct {
	TransactionID string `json:"transaction_id"`
	ReceiptNumber string `json:"receipt_number"`
}

// SettlementService turns a validated cart into a committed transaction and
// its dependent rows. Everything from receipt-number issuance through the
// last stock decrement runs in one database transaction: concurrent
// checkouts serialize only on the counters and stock rows they share, and a
// failure at any step leaves nothing persisted.
type SettlementService struct {
	DB        *sql.DB
	Ledger    repositories.TransactionRepository
	Sequences repositories.SequenceRepository
	Currency  string
	RequestID string
	Now       func() time.Time
}

func (s SettlementService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s SettlementService) Settle(ctx context.Context, cart domain.ValidatedCart, customerID, userID *int64, notes string) (SettlementResult, error) {
	now := s.now()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return SettlementResult{}, domain.StorageError{Op: "begin settlement", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	receiptSeq, err := s.Sequences.NextInScope(ctx, tx, repositories.ReceiptScopeKey(now))
	if err != nil {
		return SettlementResult{}, err
	}
	receiptNumber := repositories.FormatReceiptNumber(now, receiptSeq)

	snapshot, err := json.Marshal(cart.Lines)
	if err != nil {
		return SettlementResult{}, domain.StorageError{Op: "snapshot encode", Err: err}
	}

	txn := models.Transaction{
		ID:                     uuid.NewString(),
		Type:                   models.TransactionTypeSale,
		ReceiptNumber:          receiptNumber,
		CustomerID:             customerID,
		UserID:                 userID,
		AmountTotal:            cart.Total,
		Currency:               s.Currency,
		PaymentMethod:          cart.PaymentMethod,
		ExternalConfirmationID: cart.ExternalConfirmationID,
		LineItems:              snapshot,
		Notes:                  notes,
		CreatedAt:              now,
	}
	if err := s.Ledger.InsertTransaction(ctx, tx, txn); err != nil {
		return SettlementResult{}, err
	}

	// One agreement number per checkout, issued lazily on the first rental
	// line that actually settles.
	agreementNumber := ""

	for _, line := range cart.Lines {
		switch line.Type {
		case domain.LineProduct:
			if err := s.Ledger.DecrementStock(ctx, tx, line.ProductID, line.Units); err != nil {
				return SettlementResult{}, err
			}

		case domain.LineRental:
			if customerID == nil {
				// Rentals need an identified customer; the UI disables
				// checkout upstream, so this is a policy skip, not an error.
				utils.LogEvent(s.RequestID, "settlement", "skip_rental",
					fmt.Sprintf("equipment_id=%d skipped: no customer attached", line.EquipmentID))
				continue
			}
			if agreementNumber == "" {
				seq, err := s.Sequences.NextInScope(ctx, tx, repositories.AgreementScopeKey(now))
				if err != nil {
					return SettlementResult{}, err
				}
				agreementNumber = repositories.FormatAgreementNumber(now, seq)
			}
			rental := models.Rental{
				TransactionID:   txn.ID,
				AgreementNumber: agreementNumber,
				CustomerID:      *customerID,
				EquipmentID:     line.EquipmentID,
				Days:            line.Units,
				DueAt:           now.AddDate(0, 0, line.Units),
				DailyRate:       line.UnitPrice,
				TotalCharge:     line.Total,
				Status:          models.RentalStatusActive,
				CreatedAt:       now,
			}
			if _, err := s.Ledger.InsertRental(ctx, tx, rental); err != nil {
				return SettlementResult{}, err
			}
			if err := s.Ledger.MarkEquipmentRented(ctx, tx, line.EquipmentID); err != nil {
				return SettlementResult{}, err
			}

		case domain.LineBooking:
			if customerID == nil {
				utils.LogEvent(s.RequestID, "settlement", "skip_booking",
					fmt.Sprintf("trip_id=%d skipped: no customer attached", line.TripID))
				continue
			}
			booking := models.Booking{
				BookingNumber: newBookingNumber(now),
				TransactionID: txn.ID,
				TripID:        line.TripID,
				CustomerID:    *customerID,
				TourName:      line.TourName,
				Participants:  line.Units,
				Subtotal:      line.Total,
				Total:         line.Total,
				PaymentStatus: models.BookingPaymentPaid,
				Status:        models.BookingStatusConfirmed,
				Source:        models.BookingSourcePOS,
				CreatedAt:     now,
			}
			if _, err := s.Ledger.InsertBooking(ctx, tx, booking); err != nil {
				return SettlementResult{}, err
			}

		default:
			return SettlementResult{}, domain.ValidationError{Field: "type", Msg: fmt.Sprintf("unknown line type %q", line.Type)}
		}
	}

	if err := tx.Commit(); err != nil {
		return SettlementResult{}, domain.StorageError{Op: "commit settlement", Err: err}
	}

	utils.LogEvent(s.RequestID, "settlement", "commit",
		fmt.Sprintf("transaction_id=%s receipt=%s total=%s", txn.ID, receiptNumber, utils.FormatMoney(cart.Total)))

	return SettlementResult{TransactionID: txn.ID, ReceiptNumber: receiptNumber}, nil
}

// newBookingNumber is time-based rather than sequence-scoped; collisions at
// this granularity are accepted as negligible for POS bookings.
func newBookingNumber(now time.Time) string {
	return fmt.Sprintf("BK-%s-%04d", now.Format("20060102150405"), rand.Intn(10000))
}
