package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"posbackend/internal/config"
	"posbackend/internal/domain"
	"posbackend/internal/http/middleware"
	"posbackend/internal/metrics"
	"posbackend/internal/repositories"
	"posbackend/internal/services"
)

// checkoutRequest is the inbound cart. Client-side subtotal/tax/total are
// advisory; the server recomputes everything.
type checkoutRequest struct {
	Items      []domain.CartLine        `json:"items"`
	CustomerID *int64                   `json:"customer_id"`
	UserID     *int64                   `json:"user_id"`
	Payments   []domain.TenderedPayment `json:"payments"`
	Subtotal   float64                  `json:"subtotal"`
	Tax        float64                  `json:"tax"`
	Total      float64                  `json:"total"`
	Notes      string                   `json:"notes"`
}

// POST /api/checkout
func Checkout(c *gin.Context) {
	var req checkoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	start := time.Now()
	reqID := middleware.GetRequestID(c)

	pricing := services.PricingService{
		Catalog:   repositories.CatalogRepository{DB: config.DB},
		TaxRate:   env.TaxRate,
		RequestID: reqID,
	}
	cart, err := pricing.Validate(c.Request.Context(), req.Items, req.Payments)
	if err != nil {
		metrics.Checkouts.WithLabelValues("rejected").Inc()
		RespondDomainError(c, err)
		return
	}

	userID := middleware.UserIDFromContext(c)
	if userID == nil {
		userID = req.UserID
	}

	settlement := services.SettlementService{
		DB:        config.DB,
		Ledger:    repositories.TransactionRepository{DB: config.DB},
		Currency:  env.Currency,
		RequestID: reqID,
	}
	result, err := settlement.Settle(c.Request.Context(), cart, req.CustomerID, userID, req.Notes)
	if err != nil {
		metrics.Checkouts.WithLabelValues("failed").Inc()
		metrics.CheckoutDuration.Observe(float64(time.Since(start).Milliseconds()))
		RespondDomainError(c, err)
		return
	}

	metrics.Checkouts.WithLabelValues("settled").Inc()
	metrics.CheckoutDuration.Observe(float64(time.Since(start).Milliseconds()))

	c.JSON(http.StatusCreated, gin.H{
		"transaction_id": result.TransactionID,
		"receipt_number": result.ReceiptNumber,
	})
}
