package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"posbackend/internal/domain"
	"posbackend/internal/domain/models"
	"posbackend/internal/repositories"
	"posbackend/internal/utils"
)

// ReceiptService renders a printable PDF receipt from a settled
// transaction's line snapshot, independent of later catalog changes.
type ReceiptService struct {
	Ledger    repositories.TransactionRepository
	RequestID string
	Loader    func(ctx context.Context, id string) (models.Transaction, error)
}

func (s ReceiptService) GenerateReceipt(ctx context.Context, transactionID string) ([]byte, string, error) {
	txn, err := s.load(ctx, transactionID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", "transaction_id="+transactionID)
	return buildReceiptPDF(txn)
}

func (s ReceiptService) load(ctx context.Context, id string) (models.Transaction, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Ledger.GetByID(ctx, id)
}

func buildReceiptPDF(txn models.Transaction) ([]byte, string, error) {
	var lines []domain.PricedLine
	if len(txn.LineItems) > 0 {
		if err := json.Unmarshal(txn.LineItems, &lines); err != nil {
			return nil, "", domain.StorageError{Op: "snapshot decode", Err: err}
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Receipt No : %s", txn.ReceiptNumber),
		fmt.Sprintf("Date       : %s", utils.FormatDateTime(txn.CreatedAt)),
		fmt.Sprintf("Payment    : %s", txn.PaymentMethod),
	}
	if txn.ExternalConfirmationID != "" {
		header = append(header, fmt.Sprintf("Card Ref   : %s", txn.ExternalConfirmationID))
	}
	for _, h := range header {
		pdf.Cell(0, 7, h)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Unit", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		name := l.Description
		if l.Type == domain.LineRental {
			name += " (rental)"
		}
		if l.Type == domain.LineBooking && l.TourName != "" {
			name = l.TourName + " (trip)"
		}
		pdf.CellFormat(90, 7, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", l.Units), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatMoney(l.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatMoney(l.Total), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(145, 8, "TOTAL", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%s %s", txn.Currency, utils.FormatMoney(txn.AmountTotal)), "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for your purchase. Keep this receipt for returns and rental pickups.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", strings.ReplaceAll(txn.ReceiptNumber, "/", "_"))
	return buf.Bytes(), filename, nil
}
