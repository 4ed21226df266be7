package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"posbackend/internal/domain"
	"posbackend/internal/domain/models"
)

func TestDecrementStockInsufficient(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE products").
		WithArgs(3, int64(9), 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, _ := db.Begin()
	err = TransactionRepository{DB: db}.DecrementStock(context.Background(), tx, 9, 3)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestDecrementStockAppliesRelativeUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`stock_quantity = stock_quantity - \?`).
		WithArgs(2, int64(9), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, _ := db.Begin()
	if err := (TransactionRepository{DB: db}).DecrementStock(context.Background(), tx, 9, 2); err != nil {
		t.Fatalf("DecrementStock returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMarkEquipmentRentedConflictWhenTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE equipment").
		WithArgs(models.EquipmentStatusRented, int64(7), models.EquipmentStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, _ := db.Begin()
	err = TransactionRepository{DB: db}.MarkEquipmentRented(context.Background(), tx, 7)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestGetTransactionByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, type, receipt_number").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = TransactionRepository{DB: db}.GetByID(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetTransactionByReceiptNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	created := time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, type, receipt_number").
		WithArgs("POS-20250214-0007").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "type", "receipt_number", "customer_id", "user_id", "amount_total_cents",
			"currency", "payment_method", "external_confirmation_id", "line_items", "notes", "created_at",
		}).AddRow("tx-1", "sale", "POS-20250214-0007", nil, nil, int64(11000),
			"USD", "cash", nil, []byte(`[]`), nil, created))

	txn, err := TransactionRepository{DB: db}.GetByReceiptNumber(context.Background(), "POS-20250214-0007")
	if err != nil {
		t.Fatalf("GetByReceiptNumber returned error: %v", err)
	}
	if txn.ID != "tx-1" || txn.AmountTotal != 11000 {
		t.Fatalf("unexpected transaction: %+v", txn)
	}
}
