package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"posbackend/internal/config"
	"posbackend/internal/domain/models"
	"posbackend/internal/repositories"
	"posbackend/internal/utils"
)

type productPayload struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	SalePrice     *float64 `json:"sale_price"`
	SaleStartDate string   `json:"sale_start_date"`
	SaleEndDate   string   `json:"sale_end_date"`
	StockQuantity int      `json:"stock_quantity"`
	Active        *bool    `json:"active"`
}

func (p productPayload) toModel(id int64) (models.Product, error) {
	m := models.Product{
		ID:            id,
		Name:          p.Name,
		Category:      p.Category,
		Price:         utils.ToCents(p.Price),
		StockQuantity: p.StockQuantity,
		Active:        true,
	}
	if p.Active != nil {
		m.Active = *p.Active
	}
	if p.SalePrice != nil {
		sale := utils.ToCents(*p.SalePrice)
		m.SalePrice = &sale
	}
	if p.SaleStartDate != "" {
		t, err := utils.ParseDate(p.SaleStartDate)
		if err != nil {
			return m, err
		}
		m.SaleStartDate = &t
	}
	if p.SaleEndDate != "" {
		t, err := utils.ParseDate(p.SaleEndDate)
		if err != nil {
			return m, err
		}
		// sale window is inclusive through end of day
		end := t.Add(24*time.Hour - time.Second)
		m.SaleEndDate = &end
	}
	return m, nil
}

// GET /api/products
func GetProducts(c *gin.Context) {
	repo := repositories.CatalogRepository{DB: config.DB}
	out, err := repo.ListProducts(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

// GET /api/products/:id
func GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	p, err := repo.GetProduct(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/products
func CreateProduct(c *gin.Context) {
	var req productPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := req.toModel(0)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid sale window", err)
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	id, err := repo.CreateProduct(c.Request.Context(), m)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/products/:id
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	var req productPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := req.toModel(id)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid sale window", err)
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	if err := repo.UpdateProduct(c.Request.Context(), m); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DELETE /api/products/:id
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	if err := repo.DeleteProduct(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
