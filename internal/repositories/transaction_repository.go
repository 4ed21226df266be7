package repositories

import (
	"context"
	"database/sql"
	"errors"

	"posbackend/internal/domain"
	"posbackend/internal/domain/models"
)

// TransactionRepository persists settled transactions and their dependent
// rows. The write methods take a *sql.Tx: the settlement service owns the
// transactional boundary, this layer only issues statements inside it.
type TransactionRepository struct {
	DB *sql.DB
}

func (r TransactionRepository) InsertTransaction(ctx context.Context, tx *sql.Tx, t models.Transaction) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO transactions
			(id, type, receipt_number, customer_id, user_id, amount_total_cents,
			 currency, payment_method, external_confirmation_id, line_items, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Type, t.ReceiptNumber, t.CustomerID, t.UserID, t.AmountTotal,
		t.Currency, t.PaymentMethod, nullIfEmpty(t.ExternalConfirmationID), []byte(t.LineItems), nullIfEmpty(t.Notes), t.CreatedAt)
	if err != nil {
		return domain.StorageError{Op: "transaction insert", Err: err}
	}
	return nil
}

func (r TransactionRepository) InsertRental(ctx context.Context, tx *sql.Tx, rental models.Rental) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO rentals
			(transaction_id, agreement_number, customer_id, equipment_id, days,
			 due_at, daily_rate_cents, total_charge_cents, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rental.TransactionID, rental.AgreementNumber, rental.CustomerID, rental.EquipmentID,
		rental.Days, rental.DueAt, rental.DailyRate, rental.TotalCharge, rental.Status, rental.CreatedAt)
	if err != nil {
		return 0, domain.StorageError{Op: "rental insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.StorageError{Op: "rental insert", Err: err}
	}
	return id, nil
}

// MarkEquipmentRented flips available equipment to rented. Zero rows means
// another checkout got there first.
func (r TransactionRepository) MarkEquipmentRented(ctx context.Context, tx *sql.Tx, equipmentID int64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE equipment SET status = ? WHERE id = ? AND status = ?
	`, models.EquipmentStatusRented, equipmentID, models.EquipmentStatusAvailable)
	if err != nil {
		return domain.StorageError{Op: "equipment status update", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.StorageError{Op: "equipment status update", Err: err}
	}
	if n == 0 {
		return domain.ConflictError{Resource: "equipment", Msg: "equipment is no longer available"}
	}
	return nil
}

func (r TransactionRepository) InsertBooking(ctx context.Context, tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings
			(booking_number, transaction_id, trip_id, customer_id, tour_name,
			 participants, subtotal_cents, total_cents, payment_status, status, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.BookingNumber, b.TransactionID, b.TripID, b.CustomerID, b.TourName,
		b.Participants, b.Subtotal, b.Total, b.PaymentStatus, b.Status, b.Source, b.CreatedAt)
	if err != nil {
		return 0, domain.StorageError{Op: "booking insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.StorageError{Op: "booking insert", Err: err}
	}
	return id, nil
}

// DecrementStock applies a relative, floored decrement. The WHERE guard
// keeps stock from ever going negative; zero rows means insufficient stock.
func (r TransactionRepository) DecrementStock(ctx context.Context, tx *sql.Tx, productID int64, qty int) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity - ?
		WHERE id = ? AND stock_quantity >= ?
	`, qty, productID, qty)
	if err != nil {
		return domain.StorageError{Op: "stock decrement", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.StorageError{Op: "stock decrement", Err: err}
	}
	if n == 0 {
		return domain.ConflictError{Resource: "stock", Msg: "insufficient stock"}
	}
	return nil
}

func (r TransactionRepository) GetByID(ctx context.Context, id string) (models.Transaction, error) {
	return r.getOne(ctx, `WHERE id = ?`, id)
}

func (r TransactionRepository) GetByReceiptNumber(ctx context.Context, receiptNumber string) (models.Transaction, error) {
	return r.getOne(ctx, `WHERE receipt_number = ?`, receiptNumber)
}

func (r TransactionRepository) getOne(ctx context.Context, where string, arg any) (models.Transaction, error) {
	var (
		t            models.Transaction
		confirmation sql.NullString
		notes        sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, type, receipt_number, customer_id, user_id, amount_total_cents,
		       currency, payment_method, external_confirmation_id, line_items, notes, created_at
		FROM transactions
	`+where, arg).Scan(&t.ID, &t.Type, &t.ReceiptNumber, &t.CustomerID, &t.UserID,
		&t.AmountTotal, &t.Currency, &t.PaymentMethod, &confirmation, &t.LineItems, &notes, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, domain.NotFoundError{Resource: "transaction"}
	}
	if err != nil {
		return models.Transaction{}, domain.StorageError{Op: "transaction lookup", Err: err}
	}
	t.ExternalConfirmationID = confirmation.String
	t.Notes = notes.String
	return t, nil
}

func (r TransactionRepository) List(ctx context.Context, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, type, receipt_number, customer_id, user_id, amount_total_cents,
		       currency, payment_method, external_confirmation_id, line_items, notes, created_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, domain.StorageError{Op: "transaction list", Err: err}
	}
	defer rows.Close()

	out := make([]models.Transaction, 0, limit)
	for rows.Next() {
		var (
			t            models.Transaction
			confirmation sql.NullString
			notes        sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Type, &t.ReceiptNumber, &t.CustomerID, &t.UserID,
			&t.AmountTotal, &t.Currency, &t.PaymentMethod, &confirmation, &t.LineItems, &notes, &t.CreatedAt); err != nil {
			return nil, domain.StorageError{Op: "transaction scan", Err: err}
		}
		t.ExternalConfirmationID = confirmation.String
		t.Notes = notes.String
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "transaction list", Err: err}
	}
	return out, nil
}

// nullIfEmpty helps store optional strings without writing empty values.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
