package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"posbackend/internal/config"
	"posbackend/internal/http/middleware"
	"posbackend/internal/repositories"
	"posbackend/internal/services"
)

// GET /api/transactions
func ListTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	repo := repositories.TransactionRepository{DB: config.DB}
	out, err := repo.List(c.Request.Context(), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": out})
}

// GET /api/transactions/:id
func GetTransactionByID(c *gin.Context) {
	repo := repositories.TransactionRepository{DB: config.DB}
	txn, err := repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// GET /api/transactions/receipt/:number
func GetTransactionByReceiptNumber(c *gin.Context) {
	repo := repositories.TransactionRepository{DB: config.DB}
	txn, err := repo.GetByReceiptNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// GET /api/transactions/:id/receipt
func GetTransactionReceiptPDF(c *gin.Context) {
	svc := services.ReceiptService{
		Ledger:    repositories.TransactionRepository{DB: config.DB},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
