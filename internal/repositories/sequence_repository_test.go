package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"posbackend/internal/domain"
)

func TestNextInScopeIncrementsExistingCounter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM sequence_counters").
		WithArgs("receipt:20250214").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(41))
	mock.ExpectExec("UPDATE sequence_counters").
		WithArgs(int64(42), "receipt:20250214").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	got, err := SequenceRepository{}.NextInScope(context.Background(), tx, "receipt:20250214")
	if err != nil {
		t.Fatalf("NextInScope returned error: %v", err)
	}
	if got != 42 {
		t.Fatalf("next = %d, want 42", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNextInScopeStartsFreshScopeAtOne(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM sequence_counters").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO sequence_counters").
		WithArgs("agreement:2026").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, _ := db.Begin()
	got, err := SequenceRepository{}.NextInScope(context.Background(), tx, "agreement:2026")
	if err != nil {
		t.Fatalf("NextInScope returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("fresh scope must start at 1, got %d", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNextInScopeRetriesAfterDuplicateKeyRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// A concurrent checkout wins the first-of-scope insert; the retry takes
	// the lock path and sees the winner's value.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM sequence_counters").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO sequence_counters").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "duplicate entry"})
	mock.ExpectQuery("SELECT value FROM sequence_counters").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))
	mock.ExpectExec("UPDATE sequence_counters").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, _ := db.Begin()
	got, err := SequenceRepository{}.NextInScope(context.Background(), tx, "receipt:20250214")
	if err != nil {
		t.Fatalf("NextInScope returned error: %v", err)
	}
	if got != 2 {
		t.Fatalf("next = %d, want 2", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNextInScopeStorageErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM sequence_counters").
		WillReturnError(sql.ErrConnDone)

	tx, _ := db.Begin()
	_, err = SequenceRepository{}.NextInScope(context.Background(), tx, "receipt:20250214")
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestDocumentNumberFormatting(t *testing.T) {
	at := time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC)
	if got := FormatReceiptNumber(at, 7); got != "POS-20250214-0007" {
		t.Fatalf("receipt number = %q", got)
	}
	if got := FormatAgreementNumber(at, 12); got != "RA-2025-0012" {
		t.Fatalf("agreement number = %q", got)
	}
	// zero padding must not truncate large sequences
	if got := FormatReceiptNumber(at, 12345); got != "POS-20250214-12345" {
		t.Fatalf("receipt number = %q", got)
	}
	if got := ReceiptScopeKey(at); got != "receipt:20250214" {
		t.Fatalf("scope key = %q", got)
	}
	if got := AgreementScopeKey(at); got != "agreement:2025" {
		t.Fatalf("scope key = %q", got)
	}
}
