package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"finance-tracker-backend/internal/middleware"
	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/services/categories"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service *categories.Service
}

func NewCategoryHandler(service *categories.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) List(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	txType := models.TransactionType(c.Query("type"))

	cats, err := h.service.List(companyID, txType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var payload struct {
		Name string `json:"name" binding:"required,max=100"`
		Type string `json:"type" binding:"required,oneof=income expense"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.service.Create(middleware.CompanyID(c), payload.Name, models.TransactionType(payload.Type))
	if err != nil {
		if errors.Is(err, categories.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}

	var payload struct {
		Name string `json:"name" binding:"omitempty,max=100"`
		Type string `json:"type" binding:"omitempty,oneof=income expense"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.service.Update(uint(id), payload.Name, models.TransactionType(payload.Type))
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, categories.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, categories.ErrInUse):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
