package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"posbackend/internal/config"
	"posbackend/internal/domain/models"
	"posbackend/internal/repositories"
	"posbackend/internal/utils"
)

type tripPayload struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Active *bool   `json:"active"`
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	repo := repositories.CatalogRepository{DB: config.DB}
	out, err := repo.ListTrips(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": out})
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	t, err := repo.GetTrip(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	id, err := repo.CreateTrip(c.Request.Context(), models.Trip{
		Name:   req.Name,
		Price:  utils.ToCents(req.Price),
		Active: active,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	if err := repo.UpdateTrip(c.Request.Context(), models.Trip{
		ID:     id,
		Name:   req.Name,
		Price:  utils.ToCents(req.Price),
		Active: active,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	if err := repo.DeleteTrip(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
