package services

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"posbackend/internal/domain"
	"posbackend/internal/domain/models"
)

func receiptFixture(t *testing.T) models.Transaction {
	t.Helper()
	snapshot, err := json.Marshal([]domain.PricedLine{
		{Type: domain.LineProduct, ProductID: 1, Description: "Trail Boots", Units: 2, UnitPrice: 5000, Total: 10000},
		{Type: domain.LineRental, EquipmentID: 7, Description: "Kayak", Units: 3, UnitPrice: 2000, Total: 6000},
		{Type: domain.LineBooking, TripID: 3, TourName: "Canyon Tour", Units: 2, UnitPrice: 12000, Total: 24000},
	})
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	return models.Transaction{
		ID:                     "11111111-2222-3333-4444-555555555555",
		Type:                   models.TransactionTypeSale,
		ReceiptNumber:          "POS-20250214-0007",
		AmountTotal:            44000,
		Currency:               "USD",
		PaymentMethod:          "split",
		ExternalConfirmationID: "ch_abc123",
		LineItems:              snapshot,
		CreatedAt:              time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestGenerateReceiptProducesPDF(t *testing.T) {
	fixture := receiptFixture(t)
	svc := ReceiptService{
		RequestID: "test-req",
		Loader: func(ctx context.Context, id string) (models.Transaction, error) {
			if id != fixture.ID {
				t.Fatalf("loader got unexpected id %q", id)
			}
			return fixture, nil
		},
	}

	pdf, filename, err := svc.GenerateReceipt(context.Background(), fixture.ID)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF, first bytes: %q", pdf[:8])
	}
	if filename != "RECEIPT_POS-20250214-0007.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateReceiptMissingTransaction(t *testing.T) {
	svc := ReceiptService{
		RequestID: "test-req",
		Loader: func(ctx context.Context, id string) (models.Transaction, error) {
			return models.Transaction{}, domain.NotFoundError{Resource: "transaction"}
		},
	}

	_, _, err := svc.GenerateReceipt(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGenerateReceiptEmptySnapshot(t *testing.T) {
	fixture := receiptFixture(t)
	fixture.LineItems = nil
	fixture.PaymentMethod = "cash"
	fixture.ExternalConfirmationID = ""

	svc := ReceiptService{
		Loader: func(ctx context.Context, id string) (models.Transaction, error) {
			return fixture, nil
		},
	}

	pdf, _, err := svc.GenerateReceipt(context.Background(), fixture.ID)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}
