package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"posbackend/internal/config"
	"posbackend/internal/domain/models"
	"posbackend/internal/repositories"
	"posbackend/internal/utils"
)

type equipmentPayload struct {
	Name      string  `json:"name"`
	DailyRate float64 `json:"daily_rate"`
	Status    string  `json:"status"`
}

// GET /api/equipment
func GetEquipment(c *gin.Context) {
	repo := repositories.CatalogRepository{DB: config.DB}
	out, err := repo.ListEquipment(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"equipment": out})
}

// GET /api/equipment/:id
func GetEquipmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	e, err := repo.GetEquipment(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/equipment
func CreateEquipment(c *gin.Context) {
	var req equipmentPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.EquipmentStatusAvailable
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	id, err := repo.CreateEquipment(c.Request.Context(), models.Equipment{
		Name:      req.Name,
		DailyRate: utils.ToCents(req.DailyRate),
		Status:    status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/equipment/:id
func UpdateEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	var req equipmentPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	if err := repo.UpdateEquipment(c.Request.Context(), models.Equipment{
		ID:        id,
		Name:      req.Name,
		DailyRate: utils.ToCents(req.DailyRate),
		Status:    strings.TrimSpace(req.Status),
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DELETE /api/equipment/:id
func DeleteEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	repo := repositories.CatalogRepository{DB: config.DB}
	if err := repo.DeleteEquipment(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
