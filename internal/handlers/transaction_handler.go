package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"finance-tracker-backend/internal/middleware"
	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/repository"
	"finance-tracker-backend/internal/services/transactions"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type TransactionHandler struct {
	service *transactions.Service
}

func NewTransactionHandler(service *transactions.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func (h *TransactionHandler) List(c *gin.Context) {
	var query struct {
		DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
		DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
		Type       string `form:"type" binding:"omitempty,oneof=income expense"`
		CategoryID uint   `form:"category_id"`
		Limit      int    `form:"limit,default=20" binding:"min=1,max=100"`
		Offset     int    `form:"offset,default=0" binding:"min=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := repository.TransactionFilter{
		CompanyID:  middleware.CompanyID(c),
		Type:       models.TransactionType(query.Type),
		CategoryID: query.CategoryID,
		Limit:      query.Limit,
		Offset:     query.Offset,
	}
	if query.DateFrom != "" {
		from, _ := time.Parse(dateLayout, query.DateFrom)
		filter.DateFrom = &from
	}
	if query.DateTo != "" {
		to, _ := time.Parse(dateLayout, query.DateTo)
		filter.DateTo = &to
	}

	result, err := h.service.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var payload struct {
		CategoryID uint            `json:"categoryId" binding:"required"`
		Type       string          `json:"type" binding:"required,oneof=income expense"`
		Amount     decimal.Decimal `json:"amount" binding:"required"`
		Currency   string          `json:"currency" binding:"omitempty,len=3"`
		Date       string          `json:"date" binding:"required,datetime=2006-01-02"`
		Comment    string          `json:"comment" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !payload.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}
	if payload.Currency == "" {
		payload.Currency = "KZT"
	}
	date, _ := time.Parse(dateLayout, payload.Date)

	claims := middleware.CurrentClaims(c)
	tx, err := h.service.Create(middleware.CompanyID(c), claims.UserID, transactions.CreateInput{
		CategoryID: payload.CategoryID,
		Type:       models.TransactionType(payload.Type),
		Amount:     payload.Amount,
		Currency:   payload.Currency,
		Date:       date,
		Comment:    payload.Comment,
	})
	if err != nil {
		if errors.Is(err, transactions.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	var payload struct {
		CategoryID *uint            `json:"categoryId"`
		Type       *string          `json:"type" binding:"omitempty,oneof=income expense"`
		Amount     *decimal.Decimal `json:"amount"`
		Currency   *string          `json:"currency" binding:"omitempty,len=3"`
		Date       *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
		Comment    *string          `json:"comment" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Amount != nil && !payload.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}

	input := transactions.UpdateInput{
		CategoryID: payload.CategoryID,
		Amount:     payload.Amount,
		Currency:   payload.Currency,
		Comment:    payload.Comment,
	}
	if payload.Type != nil {
		txType := models.TransactionType(*payload.Type)
		input.Type = &txType
	}
	if payload.Date != nil {
		date, _ := time.Parse(dateLayout, *payload.Date)
		input.Date = &date
	}

	tx, err := h.service.Update(uint(id), input)
	if err != nil {
		if errors.Is(err, transactions.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, transactions.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}
