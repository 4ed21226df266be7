package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"posbackend/internal/config"
	"posbackend/internal/http/middleware"
)

var receiptNumberPattern = regexp.MustCompile(`^POS-\d{8}-\d{4}$`)

func newCheckoutRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		config.DB = nil
	})
	config.DB = db

	Init(config.Env{TaxRate: 0.10, Currency: "USD"})

	r := gin.New()
	r.Use(middleware.RequestID())
	r.POST("/api/checkout", Checkout)
	return r, mock
}

func postCheckout(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bootsRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "category", "price_cents", "sale_price_cents",
		"sale_start_date", "sale_end_date", "stock_quantity", "active",
	}).AddRow(int64(1), "Trail Boots", "footwear", int64(5000), nil, nil, nil, 10, true)
}

func TestCheckoutHappyPath(t *testing.T) {
	r, mock := newCheckoutRouter(t)

	mock.ExpectQuery("SELECT id, name, category").WithArgs(int64(1)).WillReturnRows(bootsRow())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM sequence_counters").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(6)))
	mock.ExpectExec("UPDATE sequence_counters").
		WithArgs(int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products").
		WithArgs(2, int64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := postCheckout(t, r, gin.H{
		"items": []gin.H{
			{"type": "product", "product_id": 1, "quantity": 2, "unit_price": 49.99},
		},
		"payments": []gin.H{
			{"method": "cash", "amount": 110.00},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		TransactionID string `json:"transaction_id"`
		ReceiptNumber string `json:"receipt_number"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TransactionID == "" {
		t.Fatal("expected a transaction id")
	}
	if !receiptNumberPattern.MatchString(resp.ReceiptNumber) {
		t.Fatalf("receipt number %q does not match expected format", resp.ReceiptNumber)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckoutRejectsPaymentMismatch(t *testing.T) {
	r, mock := newCheckoutRouter(t)

	mock.ExpectQuery("SELECT id, name, category").WithArgs(int64(1)).WillReturnRows(bootsRow())

	w := postCheckout(t, r, gin.H{
		"items": []gin.H{
			{"type": "product", "product_id": 1, "quantity": 2},
		},
		"payments": []gin.H{
			{"method": "cash", "amount": 109.99},
		},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckoutStockRaceReturnsConflict(t *testing.T) {
	r, mock := newCheckoutRouter(t)

	mock.ExpectQuery("SELECT id, name, category").WithArgs(int64(1)).WillReturnRows(bootsRow())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT value FROM sequence_counters").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(6)))
	mock.ExpectExec("UPDATE sequence_counters").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products").
		WithArgs(2, int64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	w := postCheckout(t, r, gin.H{
		"items": []gin.H{
			{"type": "product", "product_id": 1, "quantity": 2},
		},
		"payments": []gin.H{
			{"method": "cash", "amount": 110.00},
		},
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	w := postCheckout(t, r, gin.H{
		"items":    []gin.H{},
		"payments": []gin.H{{"method": "cash", "amount": 0}},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}
